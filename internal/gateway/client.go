package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"paygate/internal/config"
	"paygate/internal/domain"
	"paygate/pkg/e"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const requestLang = "vi"

var (
	gatewayRequestsCounter      prometheus.Counter
	gatewayRequestErrorsCounter prometheus.Counter
)

func init() {
	gatewayRequestsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gateway_requests_total",
		Help: "Total number of create-payment requests sent to the gateway",
	})

	gatewayRequestErrorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gateway_request_errors_total",
		Help: "Total number of create-payment requests that failed",
	})
}

// Client builds canonical signed create-payment requests and performs
// exactly one outbound call per invocation. It holds no mutable state
// besides the request-id counter, so it is safe for concurrent use.
type Client struct {
	cfg        config.GatewayConfig
	httpClient *http.Client
	logger     *slog.Logger

	// seq disambiguates request ids generated within the same nanosecond
	seq atomic.Uint64
}

func NewClient(cfg config.GatewayConfig, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, e.Wrap("gateway.NewClient", err)
	}

	return &Client{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// CreatePaymentRequest validates the input, signs a canonical payload and
// issues a single POST to the gateway's create endpoint. The gateway's
// own resultCode/message are passed through verbatim; only transport
// failures and unparsable bodies are translated into typed errors.
// The call is never retried here.
func (c *Client) CreatePaymentRequest(ctx context.Context, amount int64, orderInfo string) (*domain.GatewayResponse, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", e.ErrInvalidRequest)
	}
	if orderInfo == "" {
		return nil, fmt.Errorf("%w: orderInfo must not be empty", e.ErrInvalidRequest)
	}

	requestID := c.nextRequestID()
	// orderId mirrors requestId so the two always correlate for this flow
	orderID := requestID
	extraData := ""

	raw := c.signingString(amount, extraData, orderID, orderInfo, requestID)
	signature := c.sign(raw)

	req := domain.GatewayRequest{
		PartnerCode: c.cfg.PartnerCode,
		AccessKey:   c.cfg.AccessKey,
		RequestID:   requestID,
		Amount:      amount,
		OrderID:     orderID,
		OrderInfo:   orderInfo,
		RedirectURL: c.cfg.RedirectURL,
		IpnURL:      c.cfg.IpnURL,
		ExtraData:   extraData,
		RequestType: domain.RequestTypeCaptureWallet,
		Signature:   signature,
		Lang:        requestLang,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, e.Wrap("gateway.CreatePaymentRequest: failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap("gateway.CreatePaymentRequest: failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.ContentLength = int64(len(body))

	c.logger.Debug("sending create-payment request",
		slog.String("requestId", requestID),
		slog.Int64("amount", amount),
	)

	gatewayRequestsCounter.Inc()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		gatewayRequestErrorsCounter.Inc()
		c.logger.Error("gateway call failed", slog.String("requestId", requestID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", e.ErrGatewayUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		gatewayRequestErrorsCounter.Inc()
		return nil, fmt.Errorf("%w: %w", e.ErrGatewayUnavailable, err)
	}

	var resp domain.GatewayResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		gatewayRequestErrorsCounter.Inc()
		c.logger.Error("failed to parse gateway response",
			slog.String("requestId", requestID),
			slog.Int("status", httpResp.StatusCode),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", e.ErrUpstreamProtocol, err)
	}

	c.logger.Info("gateway responded",
		slog.String("requestId", requestID),
		slog.Int("resultCode", resp.ResultCode),
	)

	return &resp, nil
}

// nextRequestID concatenates the partner code with a nanosecond timestamp
// and a process-local counter. The counter keeps ids unique even when two
// requests land on the same clock reading.
func (c *Client) nextRequestID() string {
	return fmt.Sprintf("%s-%d-%d", c.cfg.PartnerCode, time.Now().UnixNano(), c.seq.Add(1))
}

// signingString builds the canonical payload in the exact field order the
// gateway re-derives on its side. The order is an external contract:
// reordering any pair invalidates every signature. Values are raw, not
// URL-encoded.
func (c *Client) signingString(amount int64, extraData, orderID, orderInfo, requestID string) string {
	return fmt.Sprintf("accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		c.cfg.AccessKey,
		amount,
		extraData,
		c.cfg.IpnURL,
		orderID,
		orderInfo,
		c.cfg.PartnerCode,
		c.cfg.RedirectURL,
		requestID,
		domain.RequestTypeCaptureWallet,
	)
}

func (c *Client) sign(raw string) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.SecretKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
