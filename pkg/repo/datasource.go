package repo

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/praslar/lib/common"
	"github.com/sendgrid/rest"
	"github.com/xuri/excelize/v2"
	"gitlab.com/goxp/cloud0/logger"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/utils"
)

const (
	SOURCE_SALES      = "sales"
	SOURCE_CATEGORIES = "categories"
	SOURCE_IMPORTS    = "imports"
)

type HTTPSource struct {
	salesURL    string
	categoryURL string
	importsURL  string
	cache       *tableCache
}

func NewHTTPSource(salesURL, categoryURL, importsURL string, cacheTTL time.Duration) SourceInterface {
	return &HTTPSource{
		salesURL:    salesURL,
		categoryURL: categoryURL,
		importsURL:  importsURL,
		cache:       newTableCache(cacheTTL),
	}
}

func (s *HTTPSource) FetchSales(ctx context.Context) (model.RawTable, error) {
	return s.fetch(ctx, SOURCE_SALES, s.salesURL)
}

func (s *HTTPSource) FetchCategories(ctx context.Context) (model.RawTable, error) {
	return s.fetch(ctx, SOURCE_CATEGORIES, s.categoryURL)
}

func (s *HTTPSource) FetchImports(ctx context.Context) (model.RawTable, error) {
	return s.fetch(ctx, SOURCE_IMPORTS, s.importsURL)
}

func (s *HTTPSource) RefreshCache() {
	s.cache.Clear()
}

func (s *HTTPSource) fetch(ctx context.Context, source, url string) (model.RawTable, error) {
	log := logger.WithCtx(ctx, "HTTPSource.fetch").WithField("source", source)

	if table, ok := s.cache.Get(url); ok {
		return table, nil
	}

	ctx, cancel := context.WithTimeout(ctx, generalFetchTimeout)
	defer cancel()

	// Same cache-buster the legacy dashboards sent, so intermediaries never
	// serve a stale file past our own TTL.
	param := map[string]string{"v": time.Now().Format("20060102150405")}
	body, err := sendWithContext(ctx, url, param)
	if err != nil {
		log.WithError(err).Error("Error when fetch remote source")
		return model.RawTable{}, &utils.FetchError{URL: url, Err: err}
	}

	var table model.RawTable
	if isSpreadsheet(url) {
		table, err = parseWorkbook(source, []byte(body))
	} else {
		table, err = parseCSV(source, body)
	}
	if err != nil {
		log.WithError(err).Error("Error when parse remote source")
		return model.RawTable{}, &utils.FetchError{URL: url, Err: err}
	}

	s.cache.Set(url, table)
	return table, nil
}

// sendWithContext runs the rest client under the caller's deadline. The
// client itself takes no context, so the request runs on its own goroutine
// and a late response is discarded.
func sendWithContext(ctx context.Context, url string, param map[string]string) (string, error) {
	type result struct {
		body string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, _, err := common.SendRestAPI(url, rest.Get, nil, param, nil)
		done <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.body, r.err
	}
}

func isSpreadsheet(url string) bool {
	trimmed := url
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.HasSuffix(strings.ToLower(trimmed), ".xlsx")
}

func parseCSV(source, body string) (model.RawTable, error) {
	reader := csv.NewReader(strings.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return model.RawTable{}, err
	}
	return tableFromRecords(source, records)
}

func parseWorkbook(source string, body []byte) (model.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return model.RawTable{}, err
	}

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return model.RawTable{}, err
	}
	return tableFromRecords(source, rows)
}

func tableFromRecords(source string, records [][]string) (model.RawTable, error) {
	if len(records) == 0 {
		return model.RawTable{}, fmt.Errorf("source %s: no header row", source)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		// Spreadsheet readers drop trailing empty cells, pad back to the
		// header width so column lookups stay positional.
		row := make([]string, len(header))
		copy(row, record)
		rows = append(rows, row)
	}

	return model.RawTable{Source: source, Header: header, Rows: rows}, nil
}
