package v1

import (
	"context"

	"go-pcbuilder-backend/internal/delivery/http/response"
	"go-pcbuilder-backend/internal/domain"
	"go-pcbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

// NewRecommendationHandler registers the recommendation summary route
func NewRecommendationHandler(public *gin.RouterGroup, recommendationUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{
		recommendationUC: recommendationUC,
	}

	public.POST("/recommendation-email", handler.SendRecommendationEmail)
}

// SendRecommendationEmail godoc
// @Summary      Send Recommendation Summary
// @Description  Email the computed PC build recommendations together with the requester's stated preferences.
// @Tags         recommendation
// @Accept       json
// @Produce      json
// @Param        request  body      domain.RecommendationEmailRequest  true  "Form data and computed recommendations"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /recommendation-email [post]
func (h *RecommendationHandler) SendRecommendationEmail(c *gin.Context) {
	var req domain.RecommendationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.recommendationUC.SendRecommendationSummary(ctx, &req); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
