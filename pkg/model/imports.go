package model

import "time"

// ImportRecord is one row of the inbound-stock file: a batch of initial
// stock for one product landing on one import date.
type ImportRecord struct {
	ImportDate   time.Time `json:"import_date"`
	SKU          string    `json:"sku"`
	Product      string    `json:"product"`
	Category     string    `json:"category"`
	InitialStock int       `json:"initial_stock"`
}

// ImportsOverviewRequest filters the imports breakdown by SKU.
type ImportsOverviewRequest struct {
	SKU string `json:"sku,omitempty" form:"sku"`
}

// ImportsByCategoryRequest selects one import date.
type ImportsByCategoryRequest struct {
	ImportDate string `json:"import_date" form:"import_date"`
}

// CategoryStock is one bar of the per-category stock chart.
type CategoryStock struct {
	Category     string `json:"category"`
	InitialStock int    `json:"initial_stock"`
}

// ImportDetailRow is one category/product detail line inside a date group.
type ImportDetailRow struct {
	Category     string `json:"category"`
	Product      string `json:"product"`
	InitialStock int    `json:"initial_stock"`
}

// ImportDateBreakdown is the expandable per-date section of the imports
// dashboard: the date total plus its category/product detail.
type ImportDateBreakdown struct {
	ImportDate string            `json:"import_date"`
	Total      int               `json:"total"`
	Details    []ImportDetailRow `json:"details"`
}

type ImportsOverview struct {
	TotalInitialStock int                   `json:"total_initial_stock"`
	Dates             []ImportDateBreakdown `json:"dates"`
	Report            IngestReport          `json:"report"`
}
