package email

import (
	"encoding/json"
	"strings"
	"testing"

	"go-pcbuilder-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeKey(t *testing.T) {
	cases := map[string]string{
		"budgetRange":     "budget Range",
		"ramSize":         "ram Size",
		"cpu":             "cpu",
		"CPUCooler":       "C P U Cooler",
		"storageCapacity": "storage Capacity",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, humanizeKey(in), "key %q", in)
	}
}

func TestRenderQuoteEmail(t *testing.T) {
	t.Run("renders details as one list item per key in payload order", func(t *testing.T) {
		var req domain.QuoteRequest
		payload := `{
			"name": "Asha",
			"email": "asha@example.com",
			"service": "Custom Build",
			"serviceDetails": {"budgetRange": "50k-70k", "ramSize": 32, "needsWifi": true}
		}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		msg, err := RenderQuoteEmail(&req)
		require.NoError(t, err)

		assert.Equal(t, "New Quote Request: Custom Build from Asha", msg.Subject)
		assert.Contains(t, msg.HTMLBody, "Service Details")
		assert.Contains(t, msg.HTMLBody, "<li><strong>budget Range:</strong> 50k-70k</li>")
		assert.Contains(t, msg.HTMLBody, "<li><strong>ram Size:</strong> 32</li>")
		assert.Contains(t, msg.HTMLBody, "<li><strong>needs Wifi:</strong> true</li>")

		// payload order is preserved, not alphabetical
		budgetIdx := strings.Index(msg.HTMLBody, "budget Range")
		ramIdx := strings.Index(msg.HTMLBody, "ram Size")
		wifiIdx := strings.Index(msg.HTMLBody, "needs Wifi")
		assert.Less(t, budgetIdx, ramIdx)
		assert.Less(t, ramIdx, wifiIdx)
	})

	t.Run("omits the details block entirely when serviceDetails is absent", func(t *testing.T) {
		req := &domain.QuoteRequest{
			Name:    "Asha",
			Email:   "asha@example.com",
			Service: "Upgrade",
		}

		msg, err := RenderQuoteEmail(req)
		require.NoError(t, err)

		assert.NotContains(t, msg.HTMLBody, "Service Details")
		assert.NotContains(t, msg.HTMLBody, "class=\"details\"")
	})

	t.Run("keeps the block for an explicit empty object", func(t *testing.T) {
		var req domain.QuoteRequest
		payload := `{"name":"A","email":"a@b.c","service":"S","serviceDetails":{}}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		msg, err := RenderQuoteEmail(&req)
		require.NoError(t, err)

		assert.Contains(t, msg.HTMLBody, "Service Details")
	})

	t.Run("defaults phone and message to N/A in both bodies", func(t *testing.T) {
		req := &domain.QuoteRequest{
			Name:    "Asha",
			Email:   "asha@example.com",
			Service: "Repair",
		}

		msg, err := RenderQuoteEmail(req)
		require.NoError(t, err)

		assert.Contains(t, msg.TextBody, "Phone: N/A")
		assert.Contains(t, msg.TextBody, "Message:\nN/A")
		assert.Contains(t, msg.HTMLBody, "N/A")
	})

	t.Run("text body carries a JSON dump of the details", func(t *testing.T) {
		var req domain.QuoteRequest
		payload := `{"name":"A","email":"a@b.c","service":"S","serviceDetails":{"ramSize":"32GB"}}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		msg, err := RenderQuoteEmail(&req)
		require.NoError(t, err)

		assert.Contains(t, msg.TextBody, `"ramSize": "32GB"`)
	})

	t.Run("escapes markup in user-supplied values", func(t *testing.T) {
		req := &domain.QuoteRequest{
			Name:    "<script>alert(1)</script>",
			Email:   "a@b.c",
			Service: "Build",
		}

		msg, err := RenderQuoteEmail(req)
		require.NoError(t, err)

		assert.NotContains(t, msg.HTMLBody, "<script>alert(1)</script>")
		assert.Contains(t, msg.HTMLBody, "&lt;script&gt;")
	})
}

func TestRenderRecommendationEmail(t *testing.T) {
	baseForm := func() *domain.BuildFormData {
		return &domain.BuildFormData{
			Name:            "Ravi",
			Email:           "ravi@example.com",
			Phone:           "9999999999",
			Usage:           "Gaming",
			Budget:          "80000",
			Speed:           "High",
			StorageCapacity: "1TB",
		}
	}

	t.Run("renders one card per recommendation with price prefix and fixed spec order", func(t *testing.T) {
		req := &domain.RecommendationEmailRequest{
			FormData: baseForm(),
			Recommendations: []domain.RecommendationItem{
				{
					BuildName:      "Storm Breaker",
					EstimatedPrice: "78999",
					WhyThisBuild:   "Best value for 1440p gaming",
					CPU:            "Ryzen 5 7600",
					GPU:            "RTX 4060 Ti",
					RAM:            "32GB DDR5",
					Storage:        "1TB NVMe",
					Motherboard:    "B650M",
					PSU:            "650W Gold",
					Cabinet:        "NZXT H5",
				},
			},
		}

		msg, err := RenderRecommendationEmail(req)
		require.NoError(t, err)

		assert.Equal(t, "New PC Recommendation Generated for Ravi", msg.Subject)
		assert.Empty(t, msg.TextBody, "recommendation mail is HTML-only")
		assert.Contains(t, msg.HTMLBody, "Storm Breaker")
		assert.Contains(t, msg.HTMLBody, "&#8377;78999")
		assert.Contains(t, msg.HTMLBody, "Best value for 1440p gaming")

		// fixed attribute order
		order := []string{"CPU", "GPU", "RAM", "Storage", "Motherboard", "PSU", "Cabinet"}
		last := -1
		for _, label := range order {
			idx := strings.Index(msg.HTMLBody, "<strong>"+label+":</strong>")
			require.GreaterOrEqual(t, idx, 0, "missing spec label %s", label)
			assert.Greater(t, idx, last, "label %s out of order", label)
			last = idx
		}
	})

	t.Run("empty recommendations render an empty card section without error", func(t *testing.T) {
		req := &domain.RecommendationEmailRequest{
			FormData:        baseForm(),
			Recommendations: []domain.RecommendationItem{},
		}

		msg, err := RenderRecommendationEmail(req)
		require.NoError(t, err)

		assert.NotContains(t, msg.HTMLBody, "class=\"card\"")
		assert.Contains(t, msg.HTMLBody, "Requirements")
	})

	t.Run("missing brands render as None, missing notes as N/A", func(t *testing.T) {
		req := &domain.RecommendationEmailRequest{
			FormData:        baseForm(),
			Recommendations: []domain.RecommendationItem{},
		}

		msg, err := RenderRecommendationEmail(req)
		require.NoError(t, err)

		assert.Contains(t, msg.HTMLBody, "<strong>Preferred Brands:</strong> None")
		assert.Contains(t, msg.HTMLBody, "<strong>Additional Notes:</strong> N/A")
	})

	t.Run("brands are joined with a comma", func(t *testing.T) {
		form := baseForm()
		form.Brands = []string{"AMD", "NVIDIA"}
		form.AdditionalNotes = "White case preferred"
		req := &domain.RecommendationEmailRequest{
			FormData:        form,
			Recommendations: []domain.RecommendationItem{},
		}

		msg, err := RenderRecommendationEmail(req)
		require.NoError(t, err)

		assert.Contains(t, msg.HTMLBody, "AMD, NVIDIA")
		assert.Contains(t, msg.HTMLBody, "White case preferred")
	})

	t.Run("missing item fields degrade to empty renderings", func(t *testing.T) {
		var req domain.RecommendationEmailRequest
		payload := `{"formData":{"name":"Ravi"},"recommendations":[{"build_name":"Bare"}]}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		msg, err := RenderRecommendationEmail(&req)
		require.NoError(t, err)

		assert.Contains(t, msg.HTMLBody, "Bare")
		assert.Contains(t, msg.HTMLBody, "<strong>GPU:</strong> </li>")
	})
}
