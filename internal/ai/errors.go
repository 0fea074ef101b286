package ai

import "fmt"

// ConfigError indicates a required credential or setting is missing.
// It is returned before any network call is attempted.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing credential %s", e.Key)
}

// NetworkError indicates the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("sending summarization request: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError indicates the endpoint answered with a non-success status.
// The response body is not assumed parseable in this case.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("summarization API returned status %d", e.Status)
}

// ParseError indicates a success response could not be decoded into
// the expected answer structure.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding summarization response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyResultError indicates the response decoded cleanly but carried
// no candidate answer.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "summarization response contained no candidates"
}
