package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"gitlab.com/goxp/cloud0/logger"

	"finan/ms-sales-analytics/conf"
	"finan/ms-sales-analytics/pkg/route"
	"finan/ms-sales-analytics/pkg/utils"
)

const (
	APPNAME = "SalesAnalytics"
)

func main() {
	conf.SetEnv()
	logger.Init(APPNAME)
	if conf.LoadEnv().LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	utils.LoadMessageError()

	_ = os.Setenv("PORT", conf.LoadEnv().Port)
	_ = os.Setenv("ENABLE_DB", conf.LoadEnv().EnableDB)

	app := route.NewService()
	ctx := context.Background()
	err := app.Start(ctx)
	if err != nil {
		logger.Tag("main").Error(err)
	}
	os.Clearenv()
}
