package domain

import "context"

// InferenceResult is whatever the inference service answered, success or
// not. The gateway relays status and body verbatim; the payload schema is
// owned entirely by the inference service.
type InferenceResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// InferenceForwarder proxies a raw JSON payload to the inference service.
type InferenceForwarder interface {
	// Forward issues a single POST. Any HTTP response, including a
	// downstream error status, comes back as a result; only transport
	// failures (unreachable host, timeout) return an error.
	Forward(ctx context.Context, payload []byte) (*InferenceResult, error)
}
