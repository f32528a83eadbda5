package main

import (
	"log"

	"github.com/HorizonColonel/orient-launch-pad/internal/app"
	"github.com/HorizonColonel/orient-launch-pad/internal/bootstrap"
	"github.com/HorizonColonel/orient-launch-pad/internal/config"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"

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

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
