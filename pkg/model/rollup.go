package model

import (
	"github.com/shopspring/decimal"
)

// RollupRequest is the query contract for grouped summaries.
type RollupRequest struct {
	SalesFilter
	GroupBy     string `json:"group_by" form:"group_by"`
	Granularity string `json:"granularity,omitempty" form:"granularity"`
}

// RollupRow is one group of a grouped summary.
type RollupRow struct {
	Key           string          `json:"key"`
	Orders        int             `json:"orders"`
	TotalQuantity int             `json:"total_quantity"`
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	// MarginPct is nil when the group's net revenue is zero.
	MarginPct *decimal.Decimal `json:"margin_pct"`
}

type RollupResponse struct {
	GroupBy     string      `json:"group_by"`
	Granularity string      `json:"granularity,omitempty"`
	Data        []RollupRow `json:"data"`
}

// TopProductsRequest is the query contract for the product leaderboard.
type TopProductsRequest struct {
	SalesFilter
	Limit int `json:"limit" form:"limit"`
}

// TopProduct is one leaderboard row, ranked by units sold.
type TopProduct struct {
	SKU           string          `json:"sku"`
	Category      string          `json:"category,omitempty"`
	TotalQuantity int             `json:"total_quantity"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
}
