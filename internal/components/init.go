package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"paygate/internal/config"
	"paygate/internal/gateway"
	"paygate/internal/kafka"
	"paygate/internal/ports"
	"paygate/internal/service"
	"paygate/internal/storage/pg"
	"paygate/internal/storage/redis"
	"paygate/pkg/logger"

	"github.com/IBM/sarama"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type Components struct {
	HttpServer    *ports.Server
	Postgres      *pg.Postgres
	Redis         *redis.Redis
	KafkaConsumer *kafka.KafkaConsumer
	KafkaProducer *kafka.Producer
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {

	redis, err := redis.NewRedis(&cfg.Redis, logger)
	if err != nil {
		logger.Error("redis error", "error", err.Error())
		return nil, fmt.Errorf("components.init.InitComponents.redis failed: %v", err)
	}

	postgres, err := pg.NewPostgres(ctx, logger, cfg.Postgres.PostgresURL)
	if err != nil {
		logger.Error("postgres error", "error", err.Error())
		return nil, fmt.Errorf("components.init.InitComponents.postgres failed: %w", err)
	}

	gatewayClient, err := gateway.NewClient(cfg.Gateway, logger)
	if err != nil {
		logger.Error("gateway error", "error", err.Error())
		return nil, fmt.Errorf("components.init.InitComponents.gateway failed: %w", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka.BrokerList, cfg.Kafka.PaymentTopic, logger)
	if err != nil {
		logger.Error("components.init.InitComponents.producer: failed to create producer client", "error", err.Error())
		return nil, fmt.Errorf("components.init.InitComponents.producer failed: %w", err)
	}

	paymentService := service.NewPaymentService(logger, gatewayClient, producer)
	promotionService := service.NewPromotionService(logger, postgres, redis, cfg.Redis.PromoTTL)

	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumer(cfg.Kafka.BrokerList, saramaConfig)
	if err != nil {
		logger.Error("components.init.InitComponents.consumer: failed to create consumer client", "error", err.Error())
		return nil, fmt.Errorf("components.init.InitComponents: consumer client failed to init: %w", err)
	}
	kafkaConsumer, err := kafka.NewKafkaConsumer(ctx, *cfg, logger, saramaConfig, consumer, postgres)
	if err != nil {
		logger.Error("failed to start", "error", err.Error())
		return nil, fmt.Errorf("components.init.InitComponents.kafkaConsumer failed: %v", err)
	}

	httpServer := ports.NewServer(ctx, cfg, logger, paymentService, promotionService)

	return &Components{
		Postgres:      postgres,
		Redis:         redis,
		KafkaConsumer: kafkaConsumer,
		KafkaProducer: producer,
		HttpServer:    httpServer,
	}, nil
}

func (c *Components) Shutdown() error {
	var errs []error
	c.Postgres.CloseConnection()
	if err := c.Redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
	}
	if err := c.KafkaConsumer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close kafka consumer: %w", err))
	}
	if err := c.KafkaProducer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close kafka producer: %w", err))
	}

	if err := c.HttpServer.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close Http Server: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	return nil
}

func SetupLogger(cfg config.Config) *slog.Logger {
	log := &slog.Logger{}

	switch cfg.Env {
	case envLocal:
		log = logger.SetupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
