package service

import (
	"finan/ms-sales-analytics/pkg/model"
)

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// FilterLines applies the dashboard sidebar filters. All populated criteria
// must match (AND). Category is the only line-grained attribute; the rest
// are order-scoped, so matching is equivalent line-wise and order-wise.
func FilterLines(lines []model.LineItem, filter model.SalesFilter) []model.LineItem {
	out := make([]model.LineItem, 0, len(lines))
	for _, l := range lines {
		if filter.DateFrom != nil && l.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && l.Date.After(*filter.DateTo) {
			continue
		}
		if len(filter.Categories) > 0 && !contains(filter.Categories, l.Category) {
			continue
		}
		if len(filter.SaleTypes) > 0 && !contains(filter.SaleTypes, l.SaleType) {
			continue
		}
		if len(filter.OrderIDs) > 0 && !contains(filter.OrderIDs, l.OrderID) {
			continue
		}
		if len(filter.Regions) > 0 && !contains(filter.Regions, l.Region) {
			continue
		}
		if len(filter.PaymentStatuses) > 0 && !contains(filter.PaymentStatuses, l.PaymentStatus) {
			continue
		}
		out = append(out, l)
	}
	return out
}
