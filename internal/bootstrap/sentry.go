package bootstrap

import (
	"time"

	"github.com/HorizonColonel/orient-launch-pad/internal/config"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// InitSentry enables error reporting when a DSN is configured. The returned
// function flushes pending events and is safe to call either way.
func InitSentry(cfg config.SentryConfig, logger *zap.Logger) func() {
	if cfg.DSN == "" {
		return func() {}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
	}); err != nil {
		logger.Error("sentry init failed", zap.Error(err))
		return func() {}
	}

	logger.Info("sentry enabled", zap.String("environment", cfg.Environment))
	return func() { sentry.Flush(2 * time.Second) }
}
