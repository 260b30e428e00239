package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"paygate/internal/domain"
	"paygate/pkg/e"

	"github.com/gin-gonic/gin"
)

// @title PayGate App Api
// @version 1
//
//go:generate mockgen -source=handlers.go -destination=mocks/mock.go -package=mocks
type PaymentService interface {
	CreatePaymentRequest(ctx context.Context, amount int64, orderInfo string) (*domain.GatewayResponse, error)
}

type PromotionService interface {
	ValidatePromotion(ctx context.Context, code string, orderValue float64) (domain.DiscountResult, error)
	GetPromotion(ctx context.Context, code string) (domain.Promotion, error)
}

type Handler struct {
	payments PaymentService
	promos   PromotionService
	logger   *slog.Logger
}

func NewHandler(logger *slog.Logger, payments PaymentService, promos PromotionService) *Handler {
	return &Handler{
		payments: payments,
		promos:   promos,
		logger:   logger,
	}
}

type CreatePaymentInput struct {
	Amount    int64  `json:"amount"`
	OrderInfo string `json:"order_info"`
}

type ValidatePromotionInput struct {
	Code       string  `json:"code"`
	OrderValue float64 `json:"order_value"`
}

// CreatePayment godoc
// @Summary Create a payment request
// @Description Build a signed create-payment request and relay the gateway's response.
// @ID create-payment
// @Accept  json
// @Produce  json
// @Param payment body CreatePaymentInput true "Payment to create"
// @Success 200 {object} domain.GatewayResponse "Gateway response, passed through verbatim"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Gateway unreachable or protocol error"
// @Router /payment [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.Bind(&input); err != nil {
		h.logger.Error("failed to bind data", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.payments.CreatePaymentRequest(c, input.Amount, input.OrderInfo)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidatePromotion godoc
// @Summary Validate a promotion code
// @Description Validate a promotion code against an order value and compute the discount.
// @ID validate-promotion
// @Accept  json
// @Produce  json
// @Param promotion body ValidatePromotionInput true "Code and order value"
// @Success 200 {object} domain.DiscountResult "Computed discount and promotion snapshot"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown or inactive code"
// @Failure 422 {object} map[string]string "Expired code or order below minimum"
// @Router /promotion/validate [post]
func (h *Handler) ValidatePromotion(c *gin.Context) {
	var input ValidatePromotionInput
	if err := c.Bind(&input); err != nil {
		h.logger.Error("failed to bind data", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.promos.ValidatePromotion(c, input.Code, input.OrderValue)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPromotion godoc
// @Summary Get an active promotion by code
// @Description Read-only lookup of an active promotion record.
// @ID get-promotion
// @Produce  json
// @Param code path string true "Promotion code"
// @Success 200 {object} domain.Promotion "Active promotion"
// @Failure 404 {object} map[string]string "Unknown or inactive code"
// @Router /promotions/{code} [get]
func (h *Handler) GetPromotion(c *gin.Context) {
	code := c.Param("code")

	promo, err := h.promos.GetPromotion(c, code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"promo": promo})
}

// respondError maps the typed errors to HTTP statuses. Every error keeps
// enough structure to render a precise message; none is swallowed.
func (h *Handler) respondError(c *gin.Context, err error) {
	var minErr *e.MinimumOrderError

	switch {
	case errors.Is(err, e.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrPromotionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": e.ErrPromotionNotFound.Error()})
	case errors.Is(err, e.ErrPromotionExpired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.ErrPromotionExpired.Error()})
	case errors.As(err, &minErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":           minErr.Error(),
			"min_order_value": minErr.MinOrderValue,
		})
	case errors.Is(err, e.ErrGatewayUnavailable), errors.Is(err, e.ErrUpstreamProtocol):
		h.logger.Error("gateway failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": e.ErrGatewayUnavailable.Error()})
	case errors.Is(err, e.ErrConfiguration):
		h.logger.Error("configuration failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": e.ErrConfiguration.Error()})
	default:
		h.logger.Error("unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
