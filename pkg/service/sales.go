package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/logger"
	"golang.org/x/sync/errgroup"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/repo"
)

type SalesService struct {
	source repo.SourceInterface
}

func NewSalesService(source repo.SourceInterface) SalesServiceInterface {
	return &SalesService{source: source}
}

type SalesServiceInterface interface {
	GetOverview(ctx context.Context, filter model.SalesFilter) (model.SalesOverview, error)
	ListOrders(ctx context.Context, req model.OrderListRequest) (model.OrderListResponse, error)
	GetRollup(ctx context.Context, req model.RollupRequest) (model.RollupResponse, error)
	GetTopProducts(ctx context.Context, req model.TopProductsRequest) ([]model.TopProduct, error)
}

// buildDataset fetches the two sales sources and runs the full pipeline.
// The dataset is rebuilt on every call and discarded with the request; only
// the raw fetch behind the source interface is cached.
func (s *SalesService) buildDataset(ctx context.Context) (*model.Dataset, error) {
	log := logger.WithCtx(ctx, "SalesService.buildDataset")

	var sales, categories model.RawTable
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		sales, err = s.source.FetchSales(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		categories, err = s.source.FetchCategories(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		log.WithError(err).Error("Error when fetch sales sources")
		return nil, err
	}

	lines, report, err := Preprocess(sales, categories)
	if err != nil {
		log.WithError(err).Error("Error when preprocess sales sources")
		return nil, err
	}
	lines = AnnotateLines(lines)

	return &model.Dataset{
		SnapshotID: uuid.New(),
		Lines:      lines,
		Orders:     GroupOrders(lines),
		Report:     report,
	}, nil
}

func (s *SalesService) GetOverview(ctx context.Context, filter model.SalesFilter) (res model.SalesOverview, err error) {
	ds, err := s.buildDataset(ctx)
	if err != nil {
		return res, err
	}

	res = Summarize(FilterLines(ds.Lines, filter))
	res.Report = ds.Report
	return res, nil
}

func (s *SalesService) ListOrders(ctx context.Context, req model.OrderListRequest) (res model.OrderListResponse, err error) {
	ds, err := s.buildDataset(ctx)
	if err != nil {
		return res, err
	}

	orders := GroupOrders(FilterLines(ds.Lines, req.SalesFilter))
	sortOrders(orders, req.Sort)

	page := repo.GetPage(req.Page)
	pageSize := repo.GetPageSize(req.PageSize)
	offset := repo.GetOffset(page, pageSize)

	total := len(orders)
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	return model.OrderListResponse{
		Data: orders[offset:end],
		Meta: repo.GetPaginationInfo(total, page, pageSize),
	}, nil
}

func (s *SalesService) GetRollup(ctx context.Context, req model.RollupRequest) (res model.RollupResponse, err error) {
	ds, err := s.buildDataset(ctx)
	if err != nil {
		return res, err
	}

	rows, err := Rollup(FilterLines(ds.Lines, req.SalesFilter), req.GroupBy, req.Granularity)
	if err != nil {
		return res, err
	}

	return model.RollupResponse{
		GroupBy:     req.GroupBy,
		Granularity: req.Granularity,
		Data:        rows,
	}, nil
}

func (s *SalesService) GetTopProducts(ctx context.Context, req model.TopProductsRequest) (res []model.TopProduct, err error) {
	ds, err := s.buildDataset(ctx)
	if err != nil {
		return nil, err
	}
	return TopProducts(FilterLines(ds.Lines, req.SalesFilter), req.Limit), nil
}

func sortOrders(orders []model.Order, sortBy string) {
	field := "date"
	desc := false
	parts := strings.Fields(sortBy)
	if len(parts) > 0 {
		field = parts[0]
	}
	if len(parts) > 1 && strings.EqualFold(parts[1], "desc") {
		desc = true
	}

	less := func(i, j int) bool { return orders[i].Date.Before(orders[j].Date) }
	switch field {
	case "net_revenue":
		less = func(i, j int) bool { return orders[i].NetRevenue.LessThan(orders[j].NetRevenue) }
	case "total_quantity":
		less = func(i, j int) bool { return orders[i].TotalQuantity < orders[j].TotalQuantity }
	case "order_id":
		less = func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID }
	}

	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(orders, less)
}
