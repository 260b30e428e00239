package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"paygate/internal/config"
	"paygate/internal/domain"

	"github.com/IBM/sarama"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//go:generate mockgen -source=consumer.go -destination=mocks/mock.go -package=mocks
//go:generate mockgen -destination=mocks/sarama_mock.go -package=mocks github.com/IBM/sarama Consumer,PartitionConsumer

var (
	processedEventsCounter  prometheus.Counter
	unmarshalErrorsCounter  prometheus.Counter
	processingErrorsCounter prometheus.Counter
	retriesCounter          prometheus.Counter
)

func init() {
	processedEventsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promo_consumer_processed_events_total",
		Help: "Total number of processed promotion events",
	})

	unmarshalErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promo_consumer_unmarshal_errors_total",
		Help: "Total number of promotion events that failed to unmarshal",
	})

	processingErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promo_consumer_processing_errors_total",
		Help: "Total number of promotion events that failed to process",
	})

	retriesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promo_consumer_retries_total",
		Help: "Total number of promotion event processing retries",
	})
}

// PromotionDB is the slice of the store the consumer writes through. The
// external administrative process owns promotion mutation; this consumer
// just applies its published events.
type PromotionDB interface {
	UpsertPromotion(ctx context.Context, promo domain.Promotion) error
	DeactivatePromotion(ctx context.Context, code string) error
}

type KafkaConsumerInterface interface {
	Consume(ctx context.Context) error
	Close() error
}

type KafkaConsumer struct {
	topic                         string
	cfg                           config.Config
	logger                        *slog.Logger
	wg                            sync.WaitGroup
	promoStore                    PromotionDB
	consumer                      sarama.Consumer
	treatUnmarshalErrorAsCritical bool
	validator                     *validator.Validate

	processedEventsCounter  prometheus.Counter
	unmarshalErrorsCounter  prometheus.Counter
	processingErrorsCounter prometheus.Counter
	retriesCounter          prometheus.Counter

	errChan chan error
}

func NewKafkaConsumer(ctx context.Context, cfg config.Config, logger *slog.Logger, saramaConfig *sarama.Config, consumer sarama.Consumer, promoStore PromotionDB) (*KafkaConsumer, error) {
	validator := validator.New()
	errChan := make(chan error, 10)
	return &KafkaConsumer{
		topic:                         cfg.Kafka.Topic,
		cfg:                           cfg,
		logger:                        logger,
		promoStore:                    promoStore,
		consumer:                      consumer,
		errChan:                       errChan,
		treatUnmarshalErrorAsCritical: cfg.Kafka.TreatUnmarshalErrorAsCritical,
		processedEventsCounter:        processedEventsCounter,
		unmarshalErrorsCounter:        unmarshalErrorsCounter,
		processingErrorsCounter:       processingErrorsCounter,
		retriesCounter:                retriesCounter,
		validator:                     validator,
	}, nil
}

func (s *KafkaConsumer) Consume(ctx context.Context) error {
	partitions, err := s.consumer.Partitions(s.topic)
	if err != nil {
		s.logger.Error("failed to get partitions", "error", err)
		return err
	}

	var mu sync.Mutex
	var allErrors []error

	for _, partition := range partitions {
		pc, err := s.consumer.ConsumePartition(s.topic, partition, sarama.OffsetNewest)
		if err != nil {
			s.logger.Error("failed to consume partition", "partition", partition, "error", err)
			mu.Lock()
			allErrors = append(allErrors, err)
			mu.Unlock()
			continue
		}
		if pc == nil {
			s.logger.Error("partition consumer is nil", "partition", partition)
			continue
		}

		s.wg.Add(1)

		go func(pc sarama.PartitionConsumer, partition int32) {
			defer s.wg.Done()
			defer func() {
				if err := pc.Close(); err != nil {
					s.logger.Error("failed to close partition consumer", "partition", partition, "error", err)
					mu.Lock()
					allErrors = append(allErrors, err)
					mu.Unlock()
				}
			}()

			for {
				select {
				case msg, ok := <-pc.Messages():
					if !ok {
						s.logger.Info("message channel closed", "partition", partition)
						return
					}

					s.logger.Info("received event", "partition", msg.Partition, "offset", msg.Offset)

					var event domain.PromotionEvent
					if err := json.Unmarshal(msg.Value, &event); err != nil {
						s.logger.Error("failed to unmarshal event", "error", err)
						s.unmarshalErrorsCounter.Inc()
						if s.treatUnmarshalErrorAsCritical {
							select {
							case s.errChan <- fmt.Errorf("failed to unmarshal event at offset %d: %w", msg.Offset, err):
							case <-ctx.Done():
								return
							}
							return
						}
						continue
					}

					if err := s.validateEvent(event); err != nil {
						s.logger.Error("kafka.consumer.Consume: invalid promotion event", slog.String("error", err.Error()))
						continue
					}

					var processErr error
					for attempt := 0; attempt <= s.cfg.Kafka.MaxRetries; attempt++ {
						if attempt > 0 {
							s.retriesCounter.Inc()
						}
						processErr = s.processEvent(ctx, event)
						if processErr == nil {
							s.processedEventsCounter.Inc()
							break
						}
						if attempt < s.cfg.Kafka.MaxRetries {
							s.logger.Warn("attempt to process the event failed",
								slog.Int("attempt", attempt),
								slog.Any("partition", partition),
								slog.String("error", processErr.Error()),
							)
							backOff := s.cfg.Kafka.InitialBackoff * time.Duration(1<<attempt)
							select {
							case <-time.After(backOff):
								continue
							case <-ctx.Done():
								s.logger.Info("shutting down kafka consumer due to context cancellation",
									slog.Any("partition", partition))
								return
							}
						}

						s.logger.Error("failed to process event after max retries",
							slog.String("error", processErr.Error()),
							slog.Any("partition", partition))

						s.processingErrorsCounter.Inc()
					}

					if processErr != nil {
						mu.Lock()
						allErrors = append(allErrors, processErr)
						mu.Unlock()
					}

				case err, ok := <-pc.Errors():
					if !ok {
						s.logger.Info("error channel closed", "partition", partition)
						return
					}
					s.logger.Error("partition consumer error", "error", err.Err)
					mu.Lock()
					allErrors = append(allErrors, err.Err)
					mu.Unlock()
					select {
					case s.errChan <- fmt.Errorf("partition consumer error: %w", err.Err):
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					s.logger.Info("context canceled, shutting down partition consumer", "partition", partition)
					return
				}
			}
		}(pc, partition)
	}

	s.wg.Wait()
	close(s.errChan)

	var firstErr error
	select {
	case err := <-s.errChan:
		firstErr = err
	default:
		firstErr = nil
	}

	if len(allErrors) > 0 {
		aggErr := errors.Join(allErrors...)
		if firstErr != nil {
			return errors.Join(firstErr, aggErr)
		}
		return aggErr
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		s.logger.Info("consumer context canceled, all goroutines finished")
		return ctx.Err()
	}

	return firstErr
}

func (s *KafkaConsumer) processEvent(ctx context.Context, event domain.PromotionEvent) error {
	switch event.Type {
	case domain.PromotionUpserted:
		if err := s.promoStore.UpsertPromotion(ctx, event.Promotion); err != nil {
			s.logger.Error("failed to upsert promotion", "error", err, "code", event.Code)
			return fmt.Errorf("failed to upsert promotion: %w", err)
		}
	case domain.PromotionDeactivated:
		if err := s.promoStore.DeactivatePromotion(ctx, event.Code); err != nil {
			s.logger.Error("failed to deactivate promotion", "error", err, "code", event.Code)
			return fmt.Errorf("failed to deactivate promotion: %w", err)
		}
	default:
		return fmt.Errorf("unknown promotion event type: %s", event.Type)
	}
	return nil
}

func (s *KafkaConsumer) Close() error {
	if err := s.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	return nil
}

func (s *KafkaConsumer) GetError() error {
	select {
	case err := <-s.errChan:
		return err
	default:
		return nil
	}
}

func (s *KafkaConsumer) validateEvent(event domain.PromotionEvent) error {
	err := s.validator.Struct(event)
	if err == nil && event.Type == domain.PromotionUpserted {
		err = s.validator.Struct(event.Promotion)
	}
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, err := range validationErrs {
				s.logger.Error("validation error",
					"field", err.Field(),
					"tag", err.Tag(),
					"value", err.Value(),
				)
			}
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
