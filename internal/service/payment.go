package service

import (
	"context"
	"log/slog"

	"paygate/internal/domain"
	"paygate/pkg/e"
)

//go:generate mockgen -source=payment.go -destination=mocks/payment_mock.go -package=mocks
type Gateway interface {
	CreatePaymentRequest(ctx context.Context, amount int64, orderInfo string) (*domain.GatewayResponse, error)
}

type EventPublisher interface {
	PublishPaymentCreated(ctx context.Context, resp *domain.GatewayResponse) error
}

type PaymentService struct {
	gateway   Gateway
	publisher EventPublisher
	logger    *slog.Logger
}

func NewPaymentService(logger *slog.Logger, gateway Gateway, publisher EventPublisher) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePaymentRequest delegates to the gateway client and publishes a
// created event on success. Publishing is best effort: the payment result
// is already final when it happens, so a broker failure only gets logged.
func (s *PaymentService) CreatePaymentRequest(ctx context.Context, amount int64, orderInfo string) (*domain.GatewayResponse, error) {
	resp, err := s.gateway.CreatePaymentRequest(ctx, amount, orderInfo)
	if err != nil {
		s.logger.Error("failed to create payment request", slog.String("error", err.Error()))
		return nil, e.Wrap("service.CreatePaymentRequest", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPaymentCreated(ctx, resp); err != nil {
			s.logger.Warn("failed to publish payment created event",
				slog.String("requestId", resp.RequestID),
				slog.String("error", err.Error()),
			)
		}
	}

	return resp, nil
}
