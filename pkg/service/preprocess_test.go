package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

var salesHeader = []string{
	"ID", "Fecha", "SKU del Producto", "Precio del Producto",
	"Cantidad de Productos", "Descuento del producto", "Margen del producto (%)",
	"Estado del Pago", "Moneda", "Región de Envío",
	"Nombre del método de envío", "Cupones",
}

func salesTable(rows ...[]string) model.RawTable {
	return model.RawTable{Source: "sales", Header: salesHeader, Rows: rows}
}

func categoryTable(rows ...[]string) model.RawTable {
	return model.RawTable{
		Source: "categories",
		Header: []string{"SKU del Producto", "Categoria"},
		Rows:   rows,
	}
}

func TestPreprocessMissingColumn(t *testing.T) {
	broken := model.RawTable{
		Source: "sales",
		Header: []string{"ID", "Fecha"},
		Rows:   nil,
	}

	_, _, err := Preprocess(broken, categoryTable())
	var missing *utils.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("Preprocess() error = %v, want MissingColumnError", err)
	}
	if missing.Column != "SKU del Producto" {
		t.Errorf("missing column = %q, want %q", missing.Column, "SKU del Producto")
	}
}

func TestPreprocessHeaderWhitespaceStripped(t *testing.T) {
	table := salesTable([]string{"A1", "2024-03-01", "S1", "1000", "1", "0", "40", "Pagado", "CLP", "RM", "Retiro en Tienda", ""})
	table.Header = append([]string(nil), salesHeader...)
	table.Header[0] = "  ID "
	table.Header[3] = " Precio del Producto"

	lines, report, err := Preprocess(table, categoryTable([]string{"S1", "Poleras"}))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if report.RowsLoaded != 1 || len(lines) != 1 {
		t.Fatalf("rows loaded = %d, want 1", report.RowsLoaded)
	}
	if !lines[0].UnitPrice.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unit price = %v, want 1000", lines[0].UnitPrice)
	}
}

func TestPreprocessNormalizesAndJoins(t *testing.T) {
	table := salesTable(
		[]string{"A1", "2024-03-01", "S1", "1.234,56", "2", "0,50", "45,5", "Pagado", "CLP", "RM", "Retiro en Tienda", "VERANO10"},
		[]string{"A2", "2024-03-02", "UNKNOWN", "500", "1", "0", "40", "Pagado", "CLP", "V Región", "Retiro en Tienda", ""},
	)
	categories := categoryTable([]string{"S1", "Poleras"})

	lines, report, err := Preprocess(table, categories)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}

	first := lines[0]
	if !first.UnitPrice.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("unit price = %v, want 1234.56", first.UnitPrice)
	}
	if !first.Discount.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("discount = %v, want 0.5", first.Discount)
	}
	if !first.MarginPct.Equal(decimal.RequireFromString("45.5")) {
		t.Errorf("margin = %v, want 45.5", first.MarginPct)
	}
	if first.Category != "Poleras" {
		t.Errorf("category = %q, want Poleras", first.Category)
	}
	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("date = %v, want %v", first.Date, want)
	}

	// join miss keeps the row with an empty category
	second := lines[1]
	if second.Category != "" {
		t.Errorf("unmatched SKU category = %q, want empty", second.Category)
	}
	if report.UnmatchedSKUs != 1 {
		t.Errorf("unmatched SKUs = %d, want 1", report.UnmatchedSKUs)
	}
}

func TestPreprocessPropagatesOrderScopedFields(t *testing.T) {
	// continuation lines of A1 carry no date, payment status, region,
	// shipping method or coupon
	table := salesTable(
		[]string{"A1", "2024-03-01", "S1", "1000", "2", "0", "40", "Pagado", "CLP", "RM", "Despacho a Domicilio (Región Metropolitana)", "VERANO10"},
		[]string{"A1", "", "S2", "500", "5", "50", "40", "", "", "", "", ""},
		[]string{"B7", "2024-03-03", "S1", "1000", "1", "0", "40", "Pendiente", "CLP", "V Región", "Retiro en Tienda", ""},
	)

	lines, _, err := Preprocess(table, categoryTable([]string{"S1", "Poleras"}, []string{"S2", "Gorros"}))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}

	continuation := lines[1]
	if !continuation.Date.Equal(lines[0].Date) {
		t.Errorf("continuation date = %v, want %v", continuation.Date, lines[0].Date)
	}
	if continuation.PaymentStatus != "Pagado" {
		t.Errorf("payment status = %q, want Pagado", continuation.PaymentStatus)
	}
	if continuation.Region != "RM" {
		t.Errorf("region = %q, want RM", continuation.Region)
	}
	if continuation.ShippingMethod != "Despacho a Domicilio (Región Metropolitana)" {
		t.Errorf("shipping method = %q", continuation.ShippingMethod)
	}
	if continuation.Coupon != "VERANO10" {
		t.Errorf("coupon = %q, want VERANO10", continuation.Coupon)
	}

	// no cross-order leakage
	if lines[2].Coupon != "" || lines[2].Region != "V Región" {
		t.Errorf("order B7 attributes leaked: %+v", lines[2])
	}
}

func TestPreprocessSkipsBadRows(t *testing.T) {
	table := salesTable(
		[]string{"A1", "2024-03-01", "S1", "1000", "2", "0", "40", "Pagado", "CLP", "RM", "Retiro en Tienda", ""},
		[]string{"A2", "not-a-date", "S1", "1000", "1", "0", "40", "Pagado", "CLP", "RM", "Retiro en Tienda", ""},
		[]string{"A3", "2024-03-02", "S1", "oops", "1", "0", "40", "Pagado", "CLP", "RM", "Retiro en Tienda", ""},
		[]string{"A4", "2024-03-02", "S1", "1000", "-2", "0", "40", "Pagado", "CLP", "RM", "Retiro en Tienda", ""},
	)

	lines, report, err := Preprocess(table, categoryTable([]string{"S1", "Poleras"}))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if report.RowsTotal != 4 || report.RowsLoaded != 1 || report.RowsSkipped != 3 {
		t.Errorf("report = %+v, want total 4 loaded 1 skipped 3", report)
	}
	if len(report.SkippedRows) != 3 {
		t.Fatalf("len(SkippedRows) = %d, want 3", len(report.SkippedRows))
	}
	if report.SkippedRows[0].Column != utils.COLUMN_DATE {
		t.Errorf("first skip column = %q, want date", report.SkippedRows[0].Column)
	}
	if report.SkippedRows[2].Column != utils.COLUMN_QUANTITY {
		t.Errorf("third skip column = %q, want quantity", report.SkippedRows[2].Column)
	}
}
