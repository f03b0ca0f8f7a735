package service

import (
	"strings"
	"time"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

// fill columns: order-scoped attributes that may be recorded only on the
// first line of an order and must be propagated to its sibling lines.
var orderScopedColumns = []string{
	utils.COLUMN_PAYMENT_STATUS,
	utils.COLUMN_DATE,
	utils.COLUMN_CURRENCY,
	utils.COLUMN_REGION,
	utils.COLUMN_SHIPPING_METHOD,
	utils.COLUMN_COUPON,
}

var salesRequiredColumns = []string{
	utils.COLUMN_ORDER_ID,
	utils.COLUMN_DATE,
	utils.COLUMN_SKU,
	utils.COLUMN_UNIT_PRICE,
	utils.COLUMN_QUANTITY,
	utils.COLUMN_DISCOUNT,
	utils.COLUMN_MARGIN_PCT,
	utils.COLUMN_PAYMENT_STATUS,
	utils.COLUMN_CURRENCY,
	utils.COLUMN_REGION,
	utils.COLUMN_SHIPPING_METHOD,
	utils.COLUMN_COUPON,
}

var categoryRequiredColumns = []string{
	utils.COLUMN_SKU,
	utils.COLUMN_CATEGORY,
}

// resolveColumns maps required column labels to their positions, comparing
// with incidental whitespace stripped. The whole schema is validated once
// here so downstream code never re-checks column presence.
func resolveColumns(table model.RawTable, required []string) (map[string]int, error) {
	positions := make(map[string]int, len(table.Header))
	for i, label := range table.Header {
		positions[strings.TrimSpace(label)] = i
	}

	resolved := make(map[string]int, len(required))
	for _, column := range required {
		idx, ok := positions[column]
		if !ok {
			return nil, &utils.MissingColumnError{Source: table.Source, Column: column}
		}
		resolved[column] = idx
	}
	return resolved, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(utils.DATE_FORMAT, s); err == nil {
		return t, nil
	}
	return time.Parse(utils.DATE_FORMAT_DAY_FIRST, s)
}

// Preprocess turns the two raw sources into normalized, typed line items:
// order-scoped fields propagated, numbers normalized from the decimal-comma
// locale, category left-joined on SKU. Rows that fail to parse are excluded
// and accounted for in the report; a missing column fails the whole batch.
func Preprocess(sales, categories model.RawTable) ([]model.LineItem, model.IngestReport, error) {
	report := model.IngestReport{RowsTotal: len(sales.Rows)}

	salesCols, err := resolveColumns(sales, salesRequiredColumns)
	if err != nil {
		return nil, report, err
	}
	categoryCols, err := resolveColumns(categories, categoryRequiredColumns)
	if err != nil {
		return nil, report, err
	}

	categoryBySKU := make(map[string]string, len(categories.Rows))
	for _, row := range categories.Rows {
		sku := cell(row, categoryCols[utils.COLUMN_SKU])
		if sku == "" {
			continue
		}
		if _, ok := categoryBySKU[sku]; !ok {
			categoryBySKU[sku] = cell(row, categoryCols[utils.COLUMN_CATEGORY])
		}
	}

	// First non-empty value per order wins for every order-scoped column,
	// so no order can end up with two different shipping methods (or dates)
	// after propagation.
	type orderAttrs map[string]string
	attrsByOrder := make(map[string]orderAttrs)
	for _, row := range sales.Rows {
		orderID := cell(row, salesCols[utils.COLUMN_ORDER_ID])
		if orderID == "" {
			continue
		}
		attrs, ok := attrsByOrder[orderID]
		if !ok {
			attrs = make(orderAttrs, len(orderScopedColumns))
			attrsByOrder[orderID] = attrs
		}
		for _, column := range orderScopedColumns {
			if attrs[column] == "" {
				attrs[column] = cell(row, salesCols[column])
			}
		}
	}

	skip := func(rowNum int, column, value, reason string) {
		report.RowsSkipped++
		report.SkippedRows = append(report.SkippedRows, utils.RowError{
			Row:    rowNum,
			Column: column,
			Value:  value,
			Reason: reason,
		})
	}

	lines := make([]model.LineItem, 0, len(sales.Rows))
	for i, row := range sales.Rows {
		rowNum := i + 2 // header is row 1

		orderID := cell(row, salesCols[utils.COLUMN_ORDER_ID])
		if orderID == "" {
			skip(rowNum, utils.COLUMN_ORDER_ID, "", "missing order id")
			continue
		}
		attrs := attrsByOrder[orderID]

		dateRaw := attrs[utils.COLUMN_DATE]
		if dateRaw == "" {
			skip(rowNum, utils.COLUMN_DATE, "", "no date on any line of the order")
			continue
		}
		date, err := parseDate(dateRaw)
		if err != nil {
			skip(rowNum, utils.COLUMN_DATE, dateRaw, "unparseable date")
			continue
		}

		price, err := utils.ParseLocaleDecimal(cell(row, salesCols[utils.COLUMN_UNIT_PRICE]))
		if err != nil {
			skip(rowNum, utils.COLUMN_UNIT_PRICE, cell(row, salesCols[utils.COLUMN_UNIT_PRICE]), err.Error())
			continue
		}
		quantity, err := utils.ParseQuantity(cell(row, salesCols[utils.COLUMN_QUANTITY]))
		if err != nil {
			skip(rowNum, utils.COLUMN_QUANTITY, cell(row, salesCols[utils.COLUMN_QUANTITY]), err.Error())
			continue
		}
		discount, err := utils.ParseLocaleDecimal(cell(row, salesCols[utils.COLUMN_DISCOUNT]))
		if err != nil {
			skip(rowNum, utils.COLUMN_DISCOUNT, cell(row, salesCols[utils.COLUMN_DISCOUNT]), err.Error())
			continue
		}
		marginPct, err := utils.ParseLocaleDecimal(cell(row, salesCols[utils.COLUMN_MARGIN_PCT]))
		if err != nil {
			skip(rowNum, utils.COLUMN_MARGIN_PCT, cell(row, salesCols[utils.COLUMN_MARGIN_PCT]), err.Error())
			continue
		}

		sku := cell(row, salesCols[utils.COLUMN_SKU])
		category, matched := categoryBySKU[sku]
		if !matched {
			report.UnmatchedSKUs++
		}

		lines = append(lines, model.LineItem{
			OrderID:        orderID,
			Date:           date,
			SKU:            sku,
			Category:       category,
			UnitPrice:      price,
			Quantity:       quantity,
			Discount:       discount,
			MarginPct:      marginPct,
			ShippingMethod: attrs[utils.COLUMN_SHIPPING_METHOD],
			Region:         attrs[utils.COLUMN_REGION],
			PaymentStatus:  attrs[utils.COLUMN_PAYMENT_STATUS],
			Currency:       attrs[utils.COLUMN_CURRENCY],
			Coupon:         attrs[utils.COLUMN_COUPON],
		})
	}

	report.RowsLoaded = len(lines)
	return lines, report, nil
}
