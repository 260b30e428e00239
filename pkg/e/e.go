package e

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest covers bad caller input. It is returned before any
	// side effect happens, so the caller can safely retry with fixed input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConfiguration means a required gateway credential is missing. A
	// request must never be built with an incomplete credential set.
	ErrConfiguration = errors.New("invalid gateway configuration")

	// ErrGatewayUnavailable wraps a transport-level failure of the outbound
	// call. The call is not retried here; the caller decides.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrUpstreamProtocol means the gateway answered but the body did not
	// match the expected structure.
	ErrUpstreamProtocol = errors.New("unexpected gateway response")

	ErrPromotionNotFound = errors.New("invalid or expired promotion code")
	ErrPromotionExpired  = errors.New("promotion code has expired")
)

// MinimumOrderError carries the required minimum so the caller can render
// a precise message.
type MinimumOrderError struct {
	MinOrderValue float64
}

func (m *MinimumOrderError) Error() string {
	return fmt.Sprintf("order value is below the required minimum of %.0f", m.MinOrderValue)
}

func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
