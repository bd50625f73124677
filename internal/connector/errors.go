// Package connector defines the gateway-facing surface shared by AMM
// connectors: the error taxonomy, request/response shapes, and the keyed
// registry that owns connector instances.
package connector

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable numeric error codes surfaced to gateway callers.
const (
	CodeServiceUninitialized  = 1001
	CodeTokenNotSupported     = 1006
	CodeTradeEstimationFailed = 1007
	CodeUnsupportedChain      = 1011
	CodeSubmissionFailed      = 1013
	CodeConfirmationTimeout   = 1014
	CodeUnknown               = 1099
)

// GatewayError is the structured failure every pipeline error is folded into
// before reaching a caller: an HTTP-style status, a stable code, and a human
// message that preserves the underlying cause.
type GatewayError struct {
	Status  int
	Code    int
	Message string
}

func (e *GatewayError) Error() string { return e.Message }

// Is matches two gateway errors by code so tests and callers can use errors.Is
// with a representative value.
func (e *GatewayError) Is(target error) bool {
	t, ok := target.(*GatewayError)
	return ok && t.Code == e.Code
}

// AsGatewayError unwraps err to a GatewayError when one is present.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func NewUnsupportedChain(chain string) *GatewayError {
	return &GatewayError{
		Status:  http.StatusServiceUnavailable,
		Code:    CodeUnsupportedChain,
		Message: fmt.Sprintf("unsupported chain: %s", chain),
	}
}

func NewServiceUninitialized(name string) *GatewayError {
	return &GatewayError{
		Status:  http.StatusServiceUnavailable,
		Code:    CodeServiceUninitialized,
		Message: fmt.Sprintf("service uninitialized: %s", name),
	}
}

func NewTokenNotSupported(symbol string) *GatewayError {
	return &GatewayError{
		Status:  http.StatusInternalServerError,
		Code:    CodeTokenNotSupported,
		Message: fmt.Sprintf("token not supported: %s", symbol),
	}
}

func NewTradeEstimationFailed(err error) *GatewayError {
	return &GatewayError{
		Status:  http.StatusInternalServerError,
		Code:    CodeTradeEstimationFailed,
		Message: fmt.Sprintf("trade estimation failed: %s", err),
	}
}

func NewSubmissionFailed(err error) *GatewayError {
	return &GatewayError{
		Status:  http.StatusInternalServerError,
		Code:    CodeSubmissionFailed,
		Message: fmt.Sprintf("transaction submission failed: %s", err),
	}
}

func NewConfirmationTimeout(txHash string, err error) *GatewayError {
	return &GatewayError{
		Status:  http.StatusInternalServerError,
		Code:    CodeConfirmationTimeout,
		Message: fmt.Sprintf("transaction %s not confirmed: %s", txHash, err),
	}
}

func NewUnknown() *GatewayError {
	return &GatewayError{
		Status:  http.StatusInternalServerError,
		Code:    CodeUnknown,
		Message: "unknown error",
	}
}
