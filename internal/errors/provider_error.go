package errors

import "fmt"

// ProviderError represents a failed call to the remote reservation
// service: a transport failure or a non-2xx response. It is
// distinguishable from an empty-but-valid result so the planner can
// skip the query and continue.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("provider request failed: %s", e.Message)
	}
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Message)
}

// NewProviderError creates a ProviderError with the given HTTP status
// code and message. A zero status code means the request never got a
// response.
func NewProviderError(code int, message string) *ProviderError {
	return &ProviderError{
		StatusCode: code,
		Message:    message,
	}
}
