package v1

import (
	"context"
	"errors"
	"strings"

	"go-pcbuilder-backend/internal/delivery/http/response"
	"go-pcbuilder-backend/internal/domain"
	"go-pcbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type QuoteHandler struct {
	quoteUC domain.QuoteUsecase
}

// NewQuoteHandler registers the quote form route (public, no auth required)
func NewQuoteHandler(public *gin.RouterGroup, quoteUC domain.QuoteUsecase) {
	handler := &QuoteHandler{
		quoteUC: quoteUC,
	}

	public.POST("/contact", handler.SubmitQuote)
}

// SubmitQuote godoc
// @Summary      Submit Quote Request
// @Description  Send a quote request through the contact form. Dispatches a notification email to the shop.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.QuoteRequest  true  "Quote Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	// The dispatch is allowed to finish even if the caller hangs up early.
	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.quoteUC.SendQuoteNotification(ctx, &req); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}

// bindErrorMessage turns a binding failure into a caller-facing message that
// names the first missing field ("name is required") instead of leaking the
// validator's struct-level wording.
func bindErrorMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			if fe.Tag() == "required" {
				field := fe.Field()
				return strings.ToLower(field[:1]) + field[1:] + " is required"
			}
		}
	}
	return "invalid request body"
}
