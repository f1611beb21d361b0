package formfill

import (
	"errors"
	"fmt"
)

// ErrEmptyUtterance is returned when the utterance is blank.
var ErrEmptyUtterance = errors.New("utterance is empty")
var ErrNoFields = errors.New("field set is empty")
var ErrModelMissing = errors.New("model not specified")
var ErrDuplicatePath = errors.New("duplicate field path")
var ErrExtractionInFlight = errors.New("extraction already in flight")
var ErrSessionClosed = errors.New("session is closed")

// ServiceError reports a gateway failure: network, auth, quota, or the model
// returning an unusable response envelope. The wrapped error is safe to show
// to the user; the core never retries.
type ServiceError struct {
	Model string
	Err   error
}

func (e *ServiceError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("gateway: %v", e.Err)
	}
	return fmt.Sprintf("gateway %s: %v", e.Model, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ParseError reports that the gateway responded but the content could not be
// interpreted as JSON. RawText keeps the original model output for logs; it
// must never be shown to the end user.
type ParseError struct {
	RawText string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "response is not valid JSON"
	}
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
