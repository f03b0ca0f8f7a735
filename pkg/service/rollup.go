package service

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/shopspring/decimal"
	"gitlab.com/goxp/cloud0/ginext"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

func periodKey(l model.LineItem, granularity string) (string, error) {
	switch granularity {
	case utils.GRANULARITY_DAY, "":
		return l.Date.Format(utils.DATE_FORMAT), nil
	case utils.GRANULARITY_WEEK:
		year, week := l.Date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), nil
	case utils.GRANULARITY_MONTH:
		return l.Date.Format("2006-01"), nil
	case utils.GRANULARITY_YEAR:
		return l.Date.Format("2006"), nil
	default:
		return "", ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}
}

func groupKey(l model.LineItem, groupBy, granularity string) (string, error) {
	switch groupBy {
	case utils.GROUP_BY_PERIOD:
		return periodKey(l, granularity)
	case utils.GROUP_BY_CATEGORY:
		return l.Category, nil
	case utils.GROUP_BY_SKU:
		return l.SKU, nil
	case utils.GROUP_BY_REGION:
		return l.Region, nil
	case utils.GROUP_BY_PAYMENT:
		return l.PaymentStatus, nil
	case utils.GROUP_BY_SHIPPING:
		return l.ShippingMethod, nil
	case utils.GROUP_BY_SALE_TYPE:
		return l.SaleType, nil
	default:
		return "", ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}
}

// Rollup produces one summary row per group, line-grained so that the
// category and SKU groupings see individual lines. Rows come out sorted by
// group key, which keeps repeated runs on identical input byte-identical.
func Rollup(lines []model.LineItem, groupBy, granularity string) ([]model.RollupRow, error) {
	// Validate the grouping before touching the data: an unknown group_by is
	// a bad request even when the filtered dataset is empty.
	if _, err := groupKey(model.LineItem{}, groupBy, granularity); err != nil {
		return nil, err
	}

	type bucket struct {
		row      model.RollupRow
		orderIDs map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, l := range lines {
		key, err := groupKey(l, groupBy, granularity)
		if err != nil {
			return nil, err
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				row: model.RollupRow{
					Key:          key,
					GrossRevenue: decimal.Zero,
					NetRevenue:   decimal.Zero,
					GrossProfit:  decimal.Zero,
				},
				orderIDs: make(map[string]struct{}),
			}
			buckets[key] = b
		}
		b.orderIDs[l.OrderID] = struct{}{}
		b.row.TotalQuantity += l.Quantity
		b.row.GrossRevenue = b.row.GrossRevenue.Add(l.GrossAmount())
		net := l.NetAmount().Sub(l.ShippingAdjustment)
		b.row.NetRevenue = b.row.NetRevenue.Add(net)
		b.row.GrossProfit = b.row.GrossProfit.Add(net.Sub(l.CostAmount()))
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]model.RollupRow, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		b.row.Orders = len(b.orderIDs)
		b.row.MarginPct = marginPct(b.row.GrossProfit, b.row.NetRevenue)
		rows = append(rows, b.row)
	}
	return rows, nil
}

// TopProducts ranks SKUs by units sold, descending. The sort is stable and
// ties keep first-seen input order: no business rule exists for tie-breaks,
// so input order is the contract.
func TopProducts(lines []model.LineItem, limit int) []model.TopProduct {
	if limit <= 0 {
		limit = utils.DEFAULT_TOP_PRODUCTS
	}

	index := make(map[string]int)
	products := make([]model.TopProduct, 0)
	for _, l := range lines {
		i, ok := index[l.SKU]
		if !ok {
			i = len(products)
			index[l.SKU] = i
			products = append(products, model.TopProduct{
				SKU:        l.SKU,
				Category:   l.Category,
				NetRevenue: decimal.Zero,
			})
		}
		products[i].TotalQuantity += l.Quantity
		products[i].NetRevenue = products[i].NetRevenue.Add(l.NetAmount().Sub(l.ShippingAdjustment))
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalQuantity > products[j].TotalQuantity
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}
