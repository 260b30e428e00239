package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"paygate/internal/config"
	"paygate/internal/domain"
	"paygate/pkg/e"
	"paygate/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGatewayConfig(endpoint string) config.GatewayConfig {
	return config.GatewayConfig{
		Endpoint:    endpoint,
		PartnerCode: "PARTNERTEST",
		AccessKey:   "accesskeytest",
		SecretKey:   "secretkeytest",
		RedirectURL: "https://shop.example.com/return",
		IpnURL:      "https://shop.example.com/ipn",
		Timeout:     2 * time.Second,
	}
}

func TestNewClient_MissingCredentials(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.GatewayConfig)
	}{
		{name: "missing secret", mutate: func(c *config.GatewayConfig) { c.SecretKey = "" }},
		{name: "missing partner code", mutate: func(c *config.GatewayConfig) { c.PartnerCode = "" }},
		{name: "missing access key", mutate: func(c *config.GatewayConfig) { c.AccessKey = "" }},
		{name: "missing endpoint", mutate: func(c *config.GatewayConfig) { c.Endpoint = "" }},
		{name: "missing ipn url", mutate: func(c *config.GatewayConfig) { c.IpnURL = "" }},
		{name: "missing redirect url", mutate: func(c *config.GatewayConfig) { c.RedirectURL = "" }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := testGatewayConfig("https://gateway.example.com/create")
			testCase.mutate(&cfg)

			client, err := NewClient(cfg, logger.SetupPrettySlog())
			assert.Nil(t, client)
			assert.ErrorIs(t, err, e.ErrConfiguration)
		})
	}
}

func TestClient_SignatureDeterminism(t *testing.T) {
	client, err := NewClient(testGatewayConfig("https://gateway.example.com/create"), logger.SetupPrettySlog())
	require.NoError(t, err)

	first := client.signingString(1817, "", "order-1", "order info", "req-1")
	second := client.signingString(1817, "", "order-1", "order info", "req-1")
	assert.Equal(t, first, second)
	assert.Equal(t, client.sign(first), client.sign(second))

	expected := "accessKey=accesskeytest&amount=1817&extraData=&ipnUrl=https://shop.example.com/ipn" +
		"&orderId=order-1&orderInfo=order info&partnerCode=PARTNERTEST" +
		"&redirectUrl=https://shop.example.com/return&requestId=req-1&requestType=captureWallet"
	assert.Equal(t, expected, first)
}

func TestClient_SignatureFieldOrderSensitivity(t *testing.T) {
	client, err := NewClient(testGatewayConfig("https://gateway.example.com/create"), logger.SetupPrettySlog())
	require.NoError(t, err)

	canonical := client.signingString(1817, "", "order-1", "order info", "req-1")

	// same logical request with amount and accessKey swapped
	permuted := "amount=1817&accessKey=accesskeytest&extraData=&ipnUrl=https://shop.example.com/ipn" +
		"&orderId=order-1&orderInfo=order info&partnerCode=PARTNERTEST" +
		"&redirectUrl=https://shop.example.com/return&requestId=req-1&requestType=captureWallet"

	assert.NotEqual(t, canonical, permuted)
	assert.NotEqual(t, client.sign(canonical), client.sign(permuted))
}

func TestClient_RequestIDUniqueUnderConcurrency(t *testing.T) {
	client, err := NewClient(testGatewayConfig("https://gateway.example.com/create"), logger.SetupPrettySlog())
	require.NoError(t, err)

	const workers = 20
	const perWorker = 50

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := client.nextRequestID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestClient_CreatePaymentRequest_Success(t *testing.T) {
	var received domain.GatewayRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Greater(t, r.ContentLength, int64(0))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.GatewayResponse{
			PartnerCode: received.PartnerCode,
			OrderID:     received.OrderID,
			RequestID:   received.RequestID,
			Amount:      received.Amount,
			ResultCode:  0,
			Message:     "Success",
			PayURL:      "https://gateway.example.com/pay/abc",
		})
	}))
	defer server.Close()

	cfg := testGatewayConfig(server.URL)
	client, err := NewClient(cfg, logger.SetupPrettySlog())
	require.NoError(t, err)

	resp, err := client.CreatePaymentRequest(context.Background(), 1817, "order #42")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ResultCode)
	assert.Equal(t, "Success", resp.Message)
	assert.Equal(t, "https://gateway.example.com/pay/abc", resp.PayURL)
	assert.Equal(t, received.RequestID, resp.RequestID)

	// the gateway side re-derives the signature from the same canonical order
	raw := "accessKey=" + cfg.AccessKey +
		"&amount=1817" +
		"&extraData=" + received.ExtraData +
		"&ipnUrl=" + cfg.IpnURL +
		"&orderId=" + received.OrderID +
		"&orderInfo=order #42" +
		"&partnerCode=" + cfg.PartnerCode +
		"&redirectUrl=" + cfg.RedirectURL +
		"&requestId=" + received.RequestID +
		"&requestType=" + domain.RequestTypeCaptureWallet
	mac := hmac.New(sha256.New, []byte(cfg.SecretKey))
	mac.Write([]byte(raw))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), received.Signature)

	assert.Equal(t, received.RequestID, received.OrderID)
	assert.Equal(t, domain.RequestTypeCaptureWallet, received.RequestType)
}

func TestClient_CreatePaymentRequest_InvalidInput(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client, err := NewClient(testGatewayConfig(server.URL), logger.SetupPrettySlog())
	require.NoError(t, err)

	testCases := []struct {
		name      string
		amount    int64
		orderInfo string
	}{
		{name: "zero amount", amount: 0, orderInfo: "order"},
		{name: "negative amount", amount: -5, orderInfo: "order"},
		{name: "empty order info", amount: 100, orderInfo: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resp, err := client.CreatePaymentRequest(context.Background(), testCase.amount, testCase.orderInfo)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, e.ErrInvalidRequest)
		})
	}

	// no network side effect on invalid input
	assert.Equal(t, 0, calls)
}

func TestClient_CreatePaymentRequest_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client, err := NewClient(testGatewayConfig(endpoint), logger.SetupPrettySlog())
	require.NoError(t, err)

	resp, err := client.CreatePaymentRequest(context.Background(), 1817, "order #42")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, e.ErrGatewayUnavailable)
}

func TestClient_CreatePaymentRequest_NoRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		// kill the connection mid-response
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer server.Close()

	client, err := NewClient(testGatewayConfig(server.URL), logger.SetupPrettySlog())
	require.NoError(t, err)

	resp, err := client.CreatePaymentRequest(context.Background(), 1817, "order #42")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, e.ErrGatewayUnavailable)
	assert.Equal(t, 1, calls)
}

func TestClient_CreatePaymentRequest_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	client, err := NewClient(testGatewayConfig(server.URL), logger.SetupPrettySlog())
	require.NoError(t, err)

	resp, err := client.CreatePaymentRequest(context.Background(), 1817, "order #42")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, e.ErrUpstreamProtocol)
	assert.False(t, errors.Is(err, e.ErrGatewayUnavailable))
}

func TestClient_CreatePaymentRequest_ResultCodePassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.GatewayResponse{
			ResultCode: 1006,
			Message:    "Transaction denied by user",
		})
	}))
	defer server.Close()

	client, err := NewClient(testGatewayConfig(server.URL), logger.SetupPrettySlog())
	require.NoError(t, err)

	// a gateway-level rejection is not an error here, it is passed through
	resp, err := client.CreatePaymentRequest(context.Background(), 1817, "order #42")
	require.NoError(t, err)
	assert.Equal(t, 1006, resp.ResultCode)
	assert.Equal(t, "Transaction denied by user", resp.Message)
}
