package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrMailerNotConfigured is returned when dispatch is attempted without
// provider credentials. Startup warns about this but does not crash.
var ErrMailerNotConfigured = errors.New("email service is not configured")

// OutboundEmail is a fully-rendered message ready for a single dispatch.
// It is built per request and discarded once the provider call returns.
type OutboundEmail struct {
	From     string
	To       string
	Subject  string
	TextBody string // optional plain-text part
	HTMLBody string
}

// DeliveryError wraps a provider failure. Detail carries the provider's own
// structured error message when one was returned; otherwise it holds a
// generic description of the transport failure.
type DeliveryError struct {
	Detail string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed: %s", e.Detail)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Mailer is the narrow capability the usecases depend on; the concrete SES
// client (or a test double) lives behind it.
type Mailer interface {
	// Send attempts exactly one delivery. A failure is a *DeliveryError.
	Send(ctx context.Context, msg OutboundEmail) error
	// IsConfigured reports whether provider credentials are present.
	IsConfigured() bool
}
