package route

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"finan/ms-sales-analytics/conf"
	"finan/ms-sales-analytics/pkg/handlers"
	"finan/ms-sales-analytics/pkg/repo"
	service2 "finan/ms-sales-analytics/pkg/service"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"
)

type Service struct {
	*service.BaseApp
}

func NewService() *Service {
	s := &Service{
		service.NewApp("MS Sales Analytics", "v1.0"),
	}

	cfg := conf.LoadEnv()
	source := repo.NewHTTPSource(
		cfg.SalesURL,
		cfg.CategoryURL,
		cfg.ImportsURL,
		time.Duration(cfg.SourceCacheTTL)*time.Second,
	)

	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"PUT", "PATCH", "GET", "DELETE", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	salesService := service2.NewSalesService(source)
	salesHandle := handlers.NewSalesHandlers(salesService)
	importsService := service2.NewImportsService(source)
	importsHandle := handlers.NewImportsHandlers(importsService)
	cacheHandle := handlers.NewCacheHandlers(source)

	v1Api := s.Router.Group("/api/v1")

	v1Api.GET("/sales/overview", ginext.WrapHandler(salesHandle.GetOverview))
	v1Api.GET("/sales/orders", ginext.WrapHandler(salesHandle.ListOrders))
	v1Api.GET("/sales/rollup", ginext.WrapHandler(salesHandle.GetRollup))
	v1Api.GET("/sales/top-products", ginext.WrapHandler(salesHandle.GetTopProducts))

	v1Api.GET("/imports/overview", ginext.WrapHandler(importsHandle.GetOverview))
	v1Api.GET("/imports/by-category", ginext.WrapHandler(importsHandle.GetByCategory))

	s.Router.POST("/internal/cache/refresh", ginext.WrapHandler(cacheHandle.RefreshCache))

	s.Router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return s
}
