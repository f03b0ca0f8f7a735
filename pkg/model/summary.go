package model

import (
	"github.com/shopspring/decimal"
)

// SalesOverview carries the headline metric cards of the sales dashboard.
type SalesOverview struct {
	OrderCount int `json:"order_count"`
	UnitsSold  int `json:"units_sold"`

	GrossRevenue       decimal.Decimal `json:"gross_revenue"`
	Discounts          decimal.Decimal `json:"discounts"`
	NetRevenue         decimal.Decimal `json:"net_revenue"`
	NetRevenueAfterTax decimal.Decimal `json:"net_revenue_after_tax"`
	Cost               decimal.Decimal `json:"cost"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	NetProfitAfterTax  decimal.Decimal `json:"net_profit_after_tax"`
	// MarginPct is nil when net revenue is zero (undefined, not 0%).
	MarginPct *decimal.Decimal `json:"margin_pct"`

	Display OverviewDisplay `json:"display"`
	Report  IngestReport    `json:"report"`
}

// OverviewDisplay mirrors the metric cards with locale-formatted strings
// (dot thousands, comma decimals). Presentation reads these verbatim.
type OverviewDisplay struct {
	GrossRevenue       string `json:"gross_revenue"`
	Discounts          string `json:"discounts"`
	NetRevenue         string `json:"net_revenue"`
	NetRevenueAfterTax string `json:"net_revenue_after_tax"`
	GrossProfit        string `json:"gross_profit"`
	NetProfitAfterTax  string `json:"net_profit_after_tax"`
	MarginPct          string `json:"margin_pct"`
}
