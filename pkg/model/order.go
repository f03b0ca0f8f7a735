package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order aggregates every line item sharing one order ID.
type Order struct {
	OrderID        string    `json:"order_id"`
	Date           time.Time `json:"date"`
	SaleType       string    `json:"sale_type"`
	TotalQuantity  int       `json:"total_quantity"`
	LineCount      int       `json:"line_count"`
	ShippingMethod string    `json:"shipping_method,omitempty"`
	Region         string    `json:"region,omitempty"`
	PaymentStatus  string    `json:"payment_status,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	Coupon         string    `json:"coupon,omitempty"`

	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	Discount     decimal.Decimal `json:"discount"`
	// NetRevenue is gross minus discounts minus the shipping adjustment.
	NetRevenue decimal.Decimal `json:"net_revenue"`
	// ShippingAdjustment is the flat delivery surcharge, applied once per
	// order regardless of how many lines the order has.
	ShippingAdjustment decimal.Decimal `json:"shipping_adjustment"`
	Cost               decimal.Decimal `json:"cost"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	NetProfitAfterTax  decimal.Decimal `json:"net_profit_after_tax"`
	// MarginPct is nil when net revenue is zero: the ratio is undefined,
	// not 0%.
	MarginPct *decimal.Decimal `json:"margin_pct"`
}

// SalesFilter narrows the dataset line-wise with every populated criterion
// ANDed. Category is line-grained, so a mixed-category order keeps only its
// matching lines; the other criteria are order-scoped attributes and match
// or exclude an order's lines together.
type SalesFilter struct {
	DateFrom        *time.Time `json:"date_from,omitempty" form:"date_from" time_format:"2006-01-02"`
	DateTo          *time.Time `json:"date_to,omitempty" form:"date_to" time_format:"2006-01-02"`
	Categories      []string   `json:"categories,omitempty" form:"categories"`
	SaleTypes       []string   `json:"sale_types,omitempty" form:"sale_types"`
	OrderIDs        []string   `json:"order_ids,omitempty" form:"order_ids"`
	Regions         []string   `json:"regions,omitempty" form:"regions"`
	PaymentStatuses []string   `json:"payment_statuses,omitempty" form:"payment_statuses"`
}

// OrderListRequest is the query contract for the order table endpoint.
type OrderListRequest struct {
	SalesFilter
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
	Sort     string `json:"sort" form:"sort"`
}

type OrderListResponse struct {
	Data []Order                `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}
