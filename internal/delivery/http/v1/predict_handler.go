package v1

import (
	"context"
	"io"
	"net/http"

	"go-pcbuilder-backend/internal/domain"
	"go-pcbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	forwarder domain.InferenceForwarder
}

// NewPredictHandler registers the inference proxy route
func NewPredictHandler(public *gin.RouterGroup, forwarder domain.InferenceForwarder) {
	handler := &PredictHandler{
		forwarder: forwarder,
	}

	public.POST("/predict", handler.Predict)
}

// Predict godoc
// @Summary      Forward Prediction Request
// @Description  Proxies an arbitrary JSON payload to the inference service and relays its response verbatim, including downstream error statuses.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Success      200  {object}  object  "Inference service response"
// @Failure      500  {object}  response.ErrorBody
// @Router       /predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.BadRequest("unable to read request body"))
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	result, err := h.forwarder.Forward(ctx, payload)
	if err != nil {
		// Transport-level failure: nothing downstream to relay
		c.Error(apperror.New(http.StatusInternalServerError, "Inference service unavailable", err))
		return
	}

	// Relay status and body unchanged, success or downstream error alike.
	c.Data(result.StatusCode, result.ContentType, result.Body)
}
