// Package errs defines the error taxonomy shared across providers, the
// advisor and the HTTP boundary. Callers match with errors.Is; wrap with
// fmt.Errorf("...: %w", errs.ErrX) to attach detail.
package errs

import "errors"

var (
	// ErrNotFound means the symbol is unknown. Aborts the whole request.
	ErrNotFound = errors.New("symbol not found")

	// ErrDataUnavailable means a provider failed in a non-fatal way.
	// The orchestrator degrades instead of aborting.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrAdvisorResponseInvalid means the model reply failed strict
	// parsing or validation. One retry is allowed, then fatal.
	ErrAdvisorResponseInvalid = errors.New("advisor response invalid")

	// ErrUpstreamFailure means the model call itself failed
	// (network, auth, server error). One retry is allowed, then fatal.
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrConfiguration means required configuration is missing or
	// invalid. Fatal at process start, never per-request.
	ErrConfiguration = errors.New("configuration error")
)
