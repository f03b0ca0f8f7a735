package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/repo"
	"finan/ms-sales-analytics/pkg/utils"
)

type ImportsService struct {
	source repo.SourceInterface
}

func NewImportsService(source repo.SourceInterface) ImportsServiceInterface {
	return &ImportsService{source: source}
}

type ImportsServiceInterface interface {
	GetOverview(ctx context.Context, req model.ImportsOverviewRequest) (model.ImportsOverview, error)
	GetByCategory(ctx context.Context, req model.ImportsByCategoryRequest) ([]model.CategoryStock, error)
}

var importsRequiredColumns = []string{
	utils.COLUMN_IMPORT_DATE,
	utils.COLUMN_IMPORT_SKU,
	utils.COLUMN_IMPORT_NAME,
	utils.COLUMN_IMPORT_CAT,
	utils.COLUMN_INITIAL_STOCK,
}

// normalizeImportHeader applies the import file's header convention:
// stripped, upper-cased, spaces to underscores. The file has drifted through
// several hand-edited revisions, this keeps all of them resolvable.
func normalizeImportHeader(header []string) []string {
	out := make([]string, len(header))
	for i, label := range header {
		out[i] = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(label)), " ", "_")
	}
	return out
}

// ParseImports types the raw imports table. Rows with unparseable dates or
// stock counts are excluded and reported, mirroring the sales ingestion
// policy.
func ParseImports(table model.RawTable) ([]model.ImportRecord, model.IngestReport, error) {
	report := model.IngestReport{RowsTotal: len(table.Rows)}

	normalized := model.RawTable{
		Source: table.Source,
		Header: normalizeImportHeader(table.Header),
		Rows:   table.Rows,
	}
	cols, err := resolveColumns(normalized, importsRequiredColumns)
	if err != nil {
		return nil, report, err
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

	records := make([]model.ImportRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rowNum := i + 2

		dateRaw := cell(row, cols[utils.COLUMN_IMPORT_DATE])
		date, err := parseDate(dateRaw)
		if err != nil {
			skip(rowNum, utils.COLUMN_IMPORT_DATE, dateRaw, "unparseable date")
			continue
		}
		stockRaw := cell(row, cols[utils.COLUMN_INITIAL_STOCK])
		stock, err := utils.ParseQuantity(stockRaw)
		if err != nil {
			skip(rowNum, utils.COLUMN_INITIAL_STOCK, stockRaw, err.Error())
			continue
		}

		product := cell(row, cols[utils.COLUMN_IMPORT_NAME])
		if product == "" {
			product = utils.PRODUCT_UNSPECIFIED
		}

		records = append(records, model.ImportRecord{
			ImportDate:   date,
			SKU:          cell(row, cols[utils.COLUMN_IMPORT_SKU]),
			Product:      product,
			Category:     cell(row, cols[utils.COLUMN_IMPORT_CAT]),
			InitialStock: stock,
		})
	}

	report.RowsLoaded = len(records)
	return records, report, nil
}

func (s *ImportsService) load(ctx context.Context) ([]model.ImportRecord, model.IngestReport, error) {
	log := logger.WithCtx(ctx, "ImportsService.load")

	table, err := s.source.FetchImports(ctx)
	if err != nil {
		log.WithError(err).Error("Error when fetch imports source")
		return nil, model.IngestReport{}, err
	}
	return ParseImports(table)
}

// GetOverview builds the per-date nested breakdown: one section per import
// date in first-seen order, each with its date total and category/product
// detail rows.
func (s *ImportsService) GetOverview(ctx context.Context, req model.ImportsOverviewRequest) (res model.ImportsOverview, err error) {
	records, report, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	if req.SKU != "" {
		filtered := make([]model.ImportRecord, 0, len(records))
		for _, r := range records {
			if r.SKU == req.SKU {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	type detailKey struct {
		category string
		product  string
	}
	dateOrder := make([]string, 0)
	byDate := make(map[string]map[detailKey]int)

	total := 0
	for _, r := range records {
		date := r.ImportDate.Format(utils.DATE_FORMAT)
		details, ok := byDate[date]
		if !ok {
			details = make(map[detailKey]int)
			byDate[date] = details
			dateOrder = append(dateOrder, date)
		}
		details[detailKey{r.Category, r.Product}] += r.InitialStock
		total += r.InitialStock
	}

	breakdowns := make([]model.ImportDateBreakdown, 0, len(dateOrder))
	for _, date := range dateOrder {
		details := byDate[date]

		keys := make([]detailKey, 0, len(details))
		dateTotal := 0
		for key, stock := range details {
			keys = append(keys, key)
			dateTotal += stock
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].category != keys[j].category {
				return keys[i].category < keys[j].category
			}
			return keys[i].product < keys[j].product
		})

		rows := make([]model.ImportDetailRow, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, model.ImportDetailRow{
				Category:     key.category,
				Product:      key.product,
				InitialStock: details[key],
			})
		}
		breakdowns = append(breakdowns, model.ImportDateBreakdown{
			ImportDate: date,
			Total:      dateTotal,
			Details:    rows,
		})
	}

	return model.ImportsOverview{
		TotalInitialStock: total,
		Dates:             breakdowns,
		Report:            report,
	}, nil
}

// GetByCategory sums initial stock per category for one import date.
func (s *ImportsService) GetByCategory(ctx context.Context, req model.ImportsByCategoryRequest) (res []model.CategoryStock, err error) {
	if req.ImportDate == "" {
		return nil, ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}
	if _, err := parseDate(req.ImportDate); err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, fmt.Sprintf("invalid import_date %q", req.ImportDate))
	}

	records, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, r := range records {
		if r.ImportDate.Format(utils.DATE_FORMAT) != req.ImportDate {
			continue
		}
		totals[r.Category] += r.InitialStock
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	res = make([]model.CategoryStock, 0, len(categories))
	for _, category := range categories {
		res = append(res, model.CategoryStock{Category: category, InitialStock: totals[category]})
	}
	return res, nil
}
