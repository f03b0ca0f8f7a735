package service

import (
	"github.com/shopspring/decimal"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

// Summarize computes the headline metric cards over (possibly filtered)
// annotated lines.
func Summarize(lines []model.LineItem) model.SalesOverview {
	gross := decimal.Zero
	discounts := decimal.Zero
	net := decimal.Zero
	cost := decimal.Zero
	units := 0
	orderIDs := make(map[string]struct{})

	for _, l := range lines {
		gross = gross.Add(l.GrossAmount())
		discounts = discounts.Add(l.DiscountAmount())
		net = net.Add(l.NetAmount()).Sub(l.ShippingAdjustment)
		cost = cost.Add(l.CostAmount())
		units += l.Quantity
		orderIDs[l.OrderID] = struct{}{}
	}

	profit := net.Sub(cost)
	overview := model.SalesOverview{
		OrderCount:         len(orderIDs),
		UnitsSold:          units,
		GrossRevenue:       gross,
		Discounts:          discounts,
		NetRevenue:         net,
		NetRevenueAfterTax: net.Mul(taxKeepShare),
		Cost:               cost,
		GrossProfit:        profit,
		NetProfitAfterTax:  profit.Mul(taxKeepShare),
		MarginPct:          marginPct(profit, net),
	}
	overview.Display = model.OverviewDisplay{
		GrossRevenue:       utils.FormatCLP(overview.GrossRevenue),
		Discounts:          utils.FormatCLP(overview.Discounts),
		NetRevenue:         utils.FormatCLP(overview.NetRevenue),
		NetRevenueAfterTax: utils.FormatCLP(overview.NetRevenueAfterTax),
		GrossProfit:        utils.FormatCLP(overview.GrossProfit),
		NetProfitAfterTax:  utils.FormatCLP(overview.NetProfitAfterTax),
		MarginPct:          utils.FormatPct(overview.MarginPct),
	}
	return overview
}
