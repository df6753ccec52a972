package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// RecommendationEmailRequest is what the frontend posts after the inference
// service has produced a set of builds: the original form answers plus the
// computed recommendations. Both parts are required; their inner fields are
// deliberately loose and degrade to empty renderings when missing.
type RecommendationEmailRequest struct {
	FormData        *BuildFormData       `json:"formData" binding:"required"`
	Recommendations []RecommendationItem `json:"recommendations" binding:"required"`
}

// BuildFormData holds the requirements the user stated in the build wizard.
type BuildFormData struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Usage           string   `json:"usage"`
	Budget          FlexText `json:"budget"`
	Speed           string   `json:"speed"`
	StorageCapacity FlexText `json:"storageCapacity"`
	Brands          []string `json:"brands"`
	AdditionalNotes string   `json:"additionalNotes"`
}

// RecommendationItem is one computed PC build. All fields are display values
// owned by the inference service; nothing here is type-checked beyond being
// a scalar.
type RecommendationItem struct {
	BuildName      FlexText `json:"build_name"`
	EstimatedPrice FlexText `json:"estimated_price"`
	WhyThisBuild   FlexText `json:"why_this_build"`
	CPU            FlexText `json:"cpu"`
	GPU            FlexText `json:"gpu"`
	RAM            FlexText `json:"ram"`
	Storage        FlexText `json:"storage"`
	Motherboard    FlexText `json:"motherboard"`
	PSU            FlexText `json:"psu"`
	Cabinet        FlexText `json:"cabinet"`
}

// RecommendationUsecase defines the interface for recommendation summary emails
type RecommendationUsecase interface {
	SendRecommendationSummary(ctx context.Context, req *RecommendationEmailRequest) error
}

// FlexText accepts a JSON string, number, bool or null and keeps the value
// in its display form. The upstream recommender emits prices sometimes as
// numbers and sometimes as pre-formatted strings; both must render as-is.
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = FlexText(val)
	case json.Number:
		*t = FlexText(val.String())
	case bool:
		*t = FlexText(fmt.Sprintf("%t", val))
	default:
		return fmt.Errorf("expected a scalar value, got %T", v)
	}
	return nil
}

func (t FlexText) String() string {
	return string(t)
}
