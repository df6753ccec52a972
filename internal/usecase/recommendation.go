package usecase

import (
	"context"
	"net/http"

	"go-pcbuilder-backend/config"
	"go-pcbuilder-backend/internal/domain"
	"go-pcbuilder-backend/pkg/apperror"
	"go-pcbuilder-backend/pkg/email"
)

type recommendationUsecase struct {
	mailer domain.Mailer
	from   string
	to     string
}

// NewRecommendationUsecase creates a new recommendation summary usecase
func NewRecommendationUsecase(mailer domain.Mailer, cfg *config.Config) domain.RecommendationUsecase {
	return &recommendationUsecase{
		mailer: mailer,
		from:   cfg.EmailFrom,
		to:     cfg.EmailTo,
	}
}

// SendRecommendationSummary validates presence of both request parts and
// dispatches the summary email. An empty recommendations list is valid and
// renders an empty card section.
func (uc *recommendationUsecase) SendRecommendationSummary(ctx context.Context, req *domain.RecommendationEmailRequest) error {
	if req.FormData == nil || req.Recommendations == nil {
		return apperror.BadRequest("formData and recommendations are required")
	}

	if !uc.mailer.IsConfigured() {
		return apperror.New(http.StatusServiceUnavailable, "Email service temporarily unavailable", domain.ErrMailerNotConfigured)
	}

	rendered, err := email.RenderRecommendationEmail(req)
	if err != nil {
		return apperror.Internal(err)
	}

	return dispatch(ctx, uc.mailer, domain.OutboundEmail{
		From:     uc.from,
		To:       uc.to,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTMLBody,
	})
}
