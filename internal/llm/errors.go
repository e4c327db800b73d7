package llm

import (
	"errors"
	"fmt"
)

// ErrCanceled is returned when the caller's context ends before a
// completion is received. The context error is wrapped alongside it.
var ErrCanceled = errors.New("request canceled")

type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UpstreamError reports a non-2xx response. Body holds the raw response text.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openai call failed (%d): %s", e.StatusCode, e.Body)
}

func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
