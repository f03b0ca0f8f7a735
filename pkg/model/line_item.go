package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTable is one fetched tabular source before any typing: the header row
// plus string cells, exactly as the CSV or spreadsheet carried them.
type RawTable struct {
	Source string     `json:"source"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// LineItem is one product line within one order, after normalization:
// labels stripped, decimal commas rewritten, order-scoped fields filled in
// from sibling lines, category joined on SKU.
type LineItem struct {
	OrderID        string          `json:"order_id"`
	Date           time.Time       `json:"date"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	Discount       decimal.Decimal `json:"discount"`
	MarginPct      decimal.Decimal `json:"margin_pct"`
	ShippingMethod string          `json:"shipping_method,omitempty"`
	Region         string          `json:"region,omitempty"`
	PaymentStatus  string          `json:"payment_status,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Coupon         string          `json:"coupon,omitempty"`

	// SaleType is derived from the order's total quantity and propagated to
	// every line, so filtering never reclassifies a partially matched order.
	SaleType string `json:"sale_type,omitempty"`

	// ShippingAdjustment is this line's quantity share of the per-order
	// delivery surcharge. Shares of one order always sum back to exactly
	// one surcharge, so line-grained rollups never double-count it.
	ShippingAdjustment decimal.Decimal `json:"shipping_adjustment"`
}

// GrossAmount is unit_price * quantity, before discount.
func (l LineItem) GrossAmount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NetAmount is (unit_price - discount) * quantity, before the shipping
// adjustment.
func (l LineItem) NetAmount() decimal.Decimal {
	return l.UnitPrice.Sub(l.Discount).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CostAmount is (unit_price - discount) * (1 - margin/100) * quantity.
func (l LineItem) CostAmount() decimal.Decimal {
	marginShare := decimal.NewFromInt(1).Sub(l.MarginPct.Div(decimal.NewFromInt(100)))
	return l.UnitPrice.Sub(l.Discount).Mul(marginShare).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// DiscountAmount is discount * quantity.
func (l LineItem) DiscountAmount() decimal.Decimal {
	return l.Discount.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
