package handlers

import (
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/service"
)

type SalesHandlers struct {
	service service.SalesServiceInterface
}

func NewSalesHandlers(service service.SalesServiceInterface) *SalesHandlers {
	return &SalesHandlers{service: service}
}

func (h *SalesHandlers) GetOverview(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SalesHandlers.GetOverview")

	var req model.SalesFilter
	r.MustBind(&req)

	rs, err := h.service.GetOverview(r.GinCtx, req)
	if err != nil {
		log.WithError(err).Error("Error when get sales overview")
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *SalesHandlers) ListOrders(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SalesHandlers.ListOrders")

	var req model.OrderListRequest
	r.MustBind(&req)

	rs, err := h.service.ListOrders(r.GinCtx, req)
	if err != nil {
		log.WithError(err).Error("Error when list orders")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs.Data,
			Meta: rs.Meta,
		},
	}, nil
}

func (h *SalesHandlers) GetRollup(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SalesHandlers.GetRollup")

	var req model.RollupRequest
	r.MustBind(&req)

	rs, err := h.service.GetRollup(r.GinCtx, req)
	if err != nil {
		log.WithError(err).Error("Error when get rollup")
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *SalesHandlers) GetTopProducts(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SalesHandlers.GetTopProducts")

	var req model.TopProductsRequest
	r.MustBind(&req)

	rs, err := h.service.GetTopProducts(r.GinCtx, req)
	if err != nil {
		log.WithError(err).Error("Error when get top products")
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}
