package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-pcbuilder-backend/config"
	"go-pcbuilder-backend/internal/domain"
	"go-pcbuilder-backend/pkg/apperror"
	"go-pcbuilder-backend/pkg/email"
)

type quoteUsecase struct {
	mailer domain.Mailer
	from   string
	to     string
}

// NewQuoteUsecase creates a new quote notification usecase
func NewQuoteUsecase(mailer domain.Mailer, cfg *config.Config) domain.QuoteUsecase {
	return &quoteUsecase{
		mailer: mailer,
		from:   cfg.EmailFrom,
		to:     cfg.EmailTo,
	}
}

// SendQuoteNotification validates the quote request, renders the
// notification and dispatches it exactly once.
func (uc *quoteUsecase) SendQuoteNotification(ctx context.Context, req *domain.QuoteRequest) error {
	// Validate input (re-checked beyond binding: whitespace-only counts as missing)
	if strings.TrimSpace(req.Name) == "" {
		return apperror.BadRequest("name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperror.BadRequest("email is required")
	}
	if strings.TrimSpace(req.Service) == "" {
		return apperror.BadRequest("service is required")
	}

	if !uc.mailer.IsConfigured() {
		return apperror.New(http.StatusServiceUnavailable, "Email service temporarily unavailable", domain.ErrMailerNotConfigured)
	}

	rendered, err := email.RenderQuoteEmail(req)
	if err != nil {
		return apperror.Internal(err)
	}

	return dispatch(ctx, uc.mailer, domain.OutboundEmail{
		From:     uc.from,
		To:       uc.to,
		Subject:  rendered.Subject,
		TextBody: rendered.TextBody,
		HTMLBody: rendered.HTMLBody,
	})
}

// dispatch sends a rendered message and maps provider failures to the error
// shape the handlers expose: HTTP 500 with the provider detail when one was
// returned.
func dispatch(ctx context.Context, mailer domain.Mailer, msg domain.OutboundEmail) error {
	if err := mailer.Send(ctx, msg); err != nil {
		var dErr *domain.DeliveryError
		if errors.As(err, &dErr) {
			return apperror.WithDetails(http.StatusInternalServerError, "Failed to send email", dErr.Detail, err)
		}
		return apperror.New(http.StatusInternalServerError, "Failed to send email", err)
	}
	return nil
}
