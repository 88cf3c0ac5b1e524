package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Client errors: caused by the request, reported with status 400
var (
	ErrMissingData    = goerr.New("Missing data")
	ErrLengthMismatch = goerr.New("labels, current and previous must have the same length")
	ErrUnknownTheme   = goerr.New("unknown theme")
	ErrInvalidPayload = goerr.New("invalid payload")
)

// Server errors: raised by the drawing pipeline, reported with status 500
var (
	ErrInvalidValue    = goerr.New("invalid numeric value")
	ErrNonFiniteValue  = goerr.New("non-finite numeric value")
	ErrRender          = goerr.New("failed to render chart")
	ErrInvalidTheme    = goerr.New("invalid theme configuration")
	ErrRenderCancelled = goerr.New("render cancelled")
)

var clientErrors = []error{
	ErrMissingData,
	ErrLengthMismatch,
	ErrUnknownTheme,
	ErrInvalidPayload,
}

// IsClientError returns true if err was caused by malformed or incomplete input
func IsClientError(err error) bool {
	return ClientReason(err) != ""
}

// ClientReason returns the short human-readable reason of a client error.
// Empty string means err is not a client error.
func ClientReason(err error) string {
	if err == nil {
		return ""
	}
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return ""
}
