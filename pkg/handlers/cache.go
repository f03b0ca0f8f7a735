package handlers

import (
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"finan/ms-sales-analytics/pkg/repo"
)

type CacheHandlers struct {
	source repo.SourceInterface
}

func NewCacheHandlers(source repo.SourceInterface) *CacheHandlers {
	return &CacheHandlers{source: source}
}

// RefreshCache drops the raw-fetch cache so the next request re-reads the
// remote files.
func (h *CacheHandlers) RefreshCache(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "CacheHandlers.RefreshCache")

	h.source.RefreshCache()
	log.Info("Raw source cache cleared")

	return ginext.NewResponseData(http.StatusOK, "refreshed"), nil
}
