package service

import (
	"github.com/shopspring/decimal"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

var (
	taxKeepShare = decimal.NewFromInt(1).Sub(decimal.NewFromFloat(utils.TAX_RATE))
	surcharge    = decimal.NewFromInt(utils.SHIPPING_SURCHARGE)
	hundred      = decimal.NewFromInt(100)
)

// AnnotateLines derives the order-scoped values that live on each line:
// the wholesale/retail classification from the order's total quantity, and
// the quantity-share apportionment of the delivery surcharge. Lines keep
// their input order.
func AnnotateLines(lines []model.LineItem) []model.LineItem {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, l := range lines {
		totals[l.OrderID] += l.Quantity
		counts[l.OrderID]++
	}

	// Remainder of the surcharge division goes to the last line of each
	// order so that the shares sum back to exactly one surcharge.
	allocated := make(map[string]decimal.Decimal)
	seen := make(map[string]int)

	annotated := make([]model.LineItem, len(lines))
	for i, l := range lines {
		total := totals[l.OrderID]
		if total >= utils.WHOLESALE_THRESHOLD {
			l.SaleType = utils.SALE_TYPE_WHOLESALE
		} else {
			l.SaleType = utils.SALE_TYPE_RETAIL
		}

		l.ShippingAdjustment = decimal.Zero
		if l.ShippingMethod == utils.SHIPPING_METHOD_HOME_DELIVERY_RM {
			seen[l.OrderID]++
			if seen[l.OrderID] == counts[l.OrderID] {
				l.ShippingAdjustment = surcharge.Sub(allocated[l.OrderID])
			} else {
				var share decimal.Decimal
				switch {
				case total > 0:
					share = surcharge.Mul(decimal.NewFromInt(int64(l.Quantity))).Div(decimal.NewFromInt(int64(total)))
				default:
					// zero-quantity order: split evenly instead of dividing
					// by the zero total
					share = surcharge.Div(decimal.NewFromInt(int64(counts[l.OrderID])))
				}
				allocated[l.OrderID] = allocated[l.OrderID].Add(share)
				l.ShippingAdjustment = share
			}
		}

		annotated[i] = l
	}
	return annotated
}

// GroupOrders folds annotated lines into one row per order. Orders appear in
// first-seen line order. The sale type is taken from the annotation rather
// than re-derived, so a filtered subset of an order keeps its classification.
func GroupOrders(lines []model.LineItem) []model.Order {
	index := make(map[string]int)
	orders := make([]model.Order, 0)

	for _, l := range lines {
		i, ok := index[l.OrderID]
		if !ok {
			i = len(orders)
			index[l.OrderID] = i
			orders = append(orders, model.Order{
				OrderID:        l.OrderID,
				Date:           l.Date,
				SaleType:       l.SaleType,
				ShippingMethod: l.ShippingMethod,
				Region:         l.Region,
				PaymentStatus:  l.PaymentStatus,
				Currency:       l.Currency,
				Coupon:         l.Coupon,
				GrossRevenue:   decimal.Zero,
				Discount:       decimal.Zero,
				NetRevenue:     decimal.Zero,
				Cost:           decimal.Zero,
			})
		}

		o := &orders[i]
		o.LineCount++
		o.TotalQuantity += l.Quantity
		o.GrossRevenue = o.GrossRevenue.Add(l.GrossAmount())
		o.Discount = o.Discount.Add(l.DiscountAmount())
		o.NetRevenue = o.NetRevenue.Add(l.NetAmount())
		o.ShippingAdjustment = o.ShippingAdjustment.Add(l.ShippingAdjustment)
		o.Cost = o.Cost.Add(l.CostAmount())
	}

	for i := range orders {
		o := &orders[i]
		o.NetRevenue = o.NetRevenue.Sub(o.ShippingAdjustment)
		o.GrossProfit = o.NetRevenue.Sub(o.Cost)
		o.NetProfitAfterTax = o.GrossProfit.Mul(taxKeepShare)
		o.MarginPct = marginPct(o.GrossProfit, o.NetRevenue)
	}
	return orders
}

// marginPct is profit over net revenue as a percentage, or nil when net
// revenue is zero: the ratio is undefined there, not 0% and not an error.
func marginPct(profit, netRevenue decimal.Decimal) *decimal.Decimal {
	if netRevenue.IsZero() {
		return nil
	}
	m := profit.Div(netRevenue).Mul(hundred)
	return &m
}
