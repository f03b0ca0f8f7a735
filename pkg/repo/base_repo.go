package repo

import (
	"context"
	"math"
	"time"

	"gitlab.com/goxp/cloud0/ginext"

	"finan/ms-sales-analytics/pkg/model"
)

const (
	generalFetchTimeout = 60 * time.Second
	defaultPageSize     = 30
	maxPageSize         = 1000
)

// SourceInterface is the data-source boundary of the engine: three remote
// tabular files, fetched fresh or served from the time-boxed raw cache.
type SourceInterface interface {
	FetchSales(ctx context.Context) (model.RawTable, error)
	FetchCategories(ctx context.Context) (model.RawTable, error)
	FetchImports(ctx context.Context) (model.RawTable, error)

	// RefreshCache drops every cached raw table so the next fetch hits the
	// remote sources again.
	RefreshCache()
}

// GetPage clamps non-positive values to the first page. Page numbers slice
// in-memory result sets, so a negative value must never reach the offset
// arithmetic.
func GetPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func GetOffset(page int, pageSize int) int {
	return (page - 1) * pageSize
}

func GetPageSize(pageSize int) int {
	if pageSize < 1 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

func GetTotalPages(totalRows, pageSize int) int {
	return int(math.Ceil(float64(totalRows) / float64(pageSize)))
}

func GetPaginationInfo(totalRow, page, pageSize int) ginext.BodyMeta {
	return ginext.BodyMeta{
		"page":        page,
		"page_size":   pageSize,
		"total_pages": GetTotalPages(totalRow, pageSize),
		"total_rows":  totalRow,
	}
}
