package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"paygate/internal/domain"

	"github.com/IBM/sarama"
)

// PaymentCreatedEvent is published after the gateway accepts a
// create-payment request. Downstream consumers (reporting, IPN
// reconciliation) key off request_id.
type PaymentCreatedEvent struct {
	Type       string `json:"type"`
	RequestID  string `json:"request_id"`
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
	ResultCode int    `json:"result_code"`
	PayURL     string `json:"pay_url,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewProducer(brokers []string, topic string, logger *slog.Logger) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka.NewProducer: failed to create producer: %w", err)
	}

	return NewProducerWithClient(producer, topic, logger), nil
}

func NewProducerWithClient(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

func (p *Producer) PublishPaymentCreated(ctx context.Context, resp *domain.GatewayResponse) error {
	event := PaymentCreatedEvent{
		Type:       "payment.request.created",
		RequestID:  resp.RequestID,
		OrderID:    resp.OrderID,
		Amount:     resp.Amount,
		ResultCode: resp.ResultCode,
		PayURL:     resp.PayURL,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka.PublishPaymentCreated: failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.RequestID),
		Value: sarama.ByteEncoder(b),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka.PublishPaymentCreated: failed to send message: %w", err)
	}

	p.logger.Info("published payment created event",
		slog.String("requestId", event.RequestID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
