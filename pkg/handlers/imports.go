package handlers

import (
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"finan/ms-sales-analytics/pkg/model"
	"finan/ms-sales-analytics/pkg/service"
)

type ImportsHandlers struct {
	service service.ImportsServiceInterface
}

func NewImportsHandlers(service service.ImportsServiceInterface) *ImportsHandlers {
	return &ImportsHandlers{service: service}
}

func (h *ImportsHandlers) GetOverview(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ImportsHandlers.GetOverview")

	var req model.ImportsOverviewRequest
	r.MustBind(&req)

	rs, err := h.service.GetOverview(r.GinCtx, req)
	if err != nil {
		log.WithError(err).Error("Error when get imports overview")
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *ImportsHandlers) GetByCategory(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ImportsHandlers.GetByCategory")

	var req model.ImportsByCategoryRequest
	r.MustBind(&req)

	rs, err := h.service.GetByCategory(r.GinCtx, req)
	if err != nil {
		log.WithError(err).Error("Error when get imports by category")
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}
