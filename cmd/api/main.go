package main

import (
	"log"

	"github.com/HorizonColonel/orient-launch-pad/internal/app"
	"github.com/HorizonColonel/orient-launch-pad/internal/bootstrap"
	"github.com/HorizonColonel/orient-launch-pad/internal/config"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	flush := bootstrap.InitSentry(cfg.Sentry, logger)
	defer flush()

	apperror.Init()
	r := gin.New()

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	bootstrap.StartHTTPServer(r, cfg.Server, bootstrap.NewZapAuditLogger(logger))
}
