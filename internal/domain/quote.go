package domain

import "context"

// QuoteRequest represents a quote form submission from the storefront.
// ServiceDetails carries free-form follow-up answers keyed by the form field
// name; the keys are unbounded and their order matters for display.
type QuoteRequest struct {
	Name           string         `json:"name" binding:"required"`
	Email          string         `json:"email" binding:"required"`
	Phone          string         `json:"phone"`
	Service        string         `json:"service" binding:"required"`
	Message        string         `json:"message"`
	ServiceDetails OrderedDetails `json:"serviceDetails"`
}

// QuoteUsecase defines the interface for quote notification operations
type QuoteUsecase interface {
	// SendQuoteNotification validates the submission, renders the
	// notification email and dispatches it once. No retries.
	SendQuoteNotification(ctx context.Context, req *QuoteRequest) error
}
