package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/HorizonColonel/orient-launch-pad/internal/config"
	"github.com/HorizonColonel/orient-launch-pad/internal/events"
	"github.com/HorizonColonel/orient-launch-pad/internal/messaging/kafka/consumer"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer applies module lifecycle events to training progress.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.consumer")

	gormDB, err := connectDB(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.ConnectRetry, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	svc := buildServices(cfg, gormDB, rdb, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          events.ModuleLifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeModuleLifecycle(ctx, reader, svc.progress, storePolicy(cfg.Store), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
