package service

import "errors"

// Error taxonomy shared by the handlers for status classification.
// Story-not-found conditions reuse store.ErrNotFound.
var (
	// ErrInvalidInput means a required field is missing or empty
	ErrInvalidInput = errors.New("invalid input")

	// ErrExternalService means a primary AI, speech or synthesis call
	// failed; optional enrichment failures are logged and swallowed
	// instead of surfacing this
	ErrExternalService = errors.New("external service failure")
)
