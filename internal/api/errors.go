package api

import "fmt"

// genericMessage is used when an error body carries no message field.
const genericMessage = "request failed"

// APIError is a request the server answered with a failure status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// TransportError is a failure before a server status was obtained: the
// network was unreachable, the request could not be built, or the body
// was not decodable JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
