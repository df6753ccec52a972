package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"unicode"

	"go-pcbuilder-backend/internal/domain"
)

// RenderedMessage is the subject/body triple produced by one of the two
// fixed renderings. From/To are resolved later by the dispatching usecase.
type RenderedMessage struct {
	Subject  string
	TextBody string
	HTMLBody string
}

// quoteEmailTemplate renders a quote-request notification: header, contact
// info, and a details block that is emitted only when serviceDetails was
// sent at all.
const quoteEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Quote Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a73e8; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a73e8; margin-top: 10px; }
        .details { background: white; padding: 15px; margin-top: 15px; }
        .details li { margin-bottom: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Quote Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Service:</div>
                <div class="value">{{.Service}}</div>
            </div>
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
{{if .HasDetails}}            <div class="details">
                <h3>Service Details</h3>
                <ul>
{{range .Details}}                    <li><strong>{{.Label}}:</strong> {{.Value}}</li>
{{end}}                </ul>
            </div>
{{end}}        </div>
        <div class="footer">
            <p>This email was sent from the BuildMyPC quote form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// recommendationEmailTemplate renders the summary mail sent after the
// recommender has produced builds: contact info, the stated requirements,
// then one card per build. Zero builds render as an empty card section.
const recommendationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New PC Recommendation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #188038; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .section { background: white; padding: 15px; margin-bottom: 15px; }
        .section h3 { margin-top: 0; color: #188038; }
        .card { background: white; padding: 15px; margin-bottom: 15px; border: 1px solid #ddd; }
        .card h3 { margin-top: 0; }
        .price { font-size: 18px; font-weight: bold; color: #188038; }
        .reason { font-style: italic; color: #555; margin: 10px 0; }
        .specs li { margin-bottom: 3px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New PC Recommendation Generated</h1>
        </div>
        <div class="content">
            <div class="section">
                <h3>Contact Information</h3>
                <p><strong>Name:</strong> {{.Name}}</p>
                <p><strong>Email:</strong> {{.Email}}</p>
                <p><strong>Phone:</strong> {{.Phone}}</p>
            </div>
            <div class="section">
                <h3>Requirements</h3>
                <p><strong>Usage:</strong> {{.Usage}}</p>
                <p><strong>Budget:</strong> {{.Budget}}</p>
                <p><strong>Speed Priority:</strong> {{.Speed}}</p>
                <p><strong>Storage:</strong> {{.Storage}}</p>
                <p><strong>Preferred Brands:</strong> {{.Brands}}</p>
                <p><strong>Additional Notes:</strong> {{.Notes}}</p>
            </div>
{{range .Builds}}            <div class="card">
                <h3>{{.Name}}</h3>
                <p class="price">&#8377;{{.Price}}</p>
                <p class="reason">&quot;{{.Reason}}&quot;</p>
                <ul class="specs">
{{range .Specs}}                    <li><strong>{{.Label}}:</strong> {{.Value}}</li>
{{end}}                </ul>
            </div>
{{end}}        </div>
        <div class="footer">
            <p>This email was generated by the BuildMyPC recommendation engine.</p>
        </div>
    </div>
</body>
</html>`

var (
	quoteTmpl          = template.Must(template.New("quote").Parse(quoteEmailTemplate))
	recommendationTmpl = template.Must(template.New("recommendation").Parse(recommendationEmailTemplate))
)

type detailView struct {
	Label string
	Value string
}

type quoteEmailView struct {
	Service    string
	Name       string
	Email      string
	Phone      string
	Message    string
	HasDetails bool
	Details    []detailView
}

type specView struct {
	Label string
	Value string
}

type buildCardView struct {
	Name   string
	Price  string
	Reason string
	Specs  []specView
}

type recommendationEmailView struct {
	Name    string
	Email   string
	Phone   string
	Usage   string
	Budget  string
	Speed   string
	Storage string
	Brands  string
	Notes   string
	Builds  []buildCardView
}

// RenderQuoteEmail builds the quote-request notification from a validated
// submission.
func RenderQuoteEmail(req *domain.QuoteRequest) (*RenderedMessage, error) {
	view := quoteEmailView{
		Service:    req.Service,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      defaultIfEmpty(req.Phone, "N/A"),
		Message:    defaultIfEmpty(req.Message, "N/A"),
		HasDetails: req.ServiceDetails != nil,
	}
	for _, f := range req.ServiceDetails {
		view.Details = append(view.Details, detailView{
			Label: humanizeKey(f.Key),
			Value: f.Display(),
		})
	}

	var html bytes.Buffer
	if err := quoteTmpl.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("failed to execute quote template: %w", err)
	}

	detailsJSON, err := json.MarshalIndent(req.ServiceDetails, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode service details: %w", err)
	}

	text := fmt.Sprintf(
		"New quote request received.\n\n"+
			"Service: %s\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n\n"+
			"Service Details:\n%s\n\n"+
			"Message:\n%s\n",
		req.Service,
		req.Name,
		req.Email,
		view.Phone,
		detailsJSON,
		view.Message,
	)

	return &RenderedMessage{
		Subject:  fmt.Sprintf("New Quote Request: %s from %s", req.Service, req.Name),
		TextBody: text,
		HTMLBody: html.String(),
	}, nil
}

// RenderRecommendationEmail builds the recommendation summary. The message
// is HTML-only; missing item fields render as blanks rather than failing.
func RenderRecommendationEmail(req *domain.RecommendationEmailRequest) (*RenderedMessage, error) {
	form := req.FormData

	brands := "None"
	if len(form.Brands) > 0 {
		brands = strings.Join(form.Brands, ", ")
	}

	view := recommendationEmailView{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   defaultIfEmpty(form.Phone, "N/A"),
		Usage:   form.Usage,
		Budget:  form.Budget.String(),
		Speed:   form.Speed,
		Storage: form.StorageCapacity.String(),
		Brands:  brands,
		Notes:   defaultIfEmpty(form.AdditionalNotes, "N/A"),
	}

	for _, item := range req.Recommendations {
		view.Builds = append(view.Builds, buildCardView{
			Name:   item.BuildName.String(),
			Price:  item.EstimatedPrice.String(),
			Reason: item.WhyThisBuild.String(),
			Specs: []specView{
				{Label: "CPU", Value: item.CPU.String()},
				{Label: "GPU", Value: item.GPU.String()},
				{Label: "RAM", Value: item.RAM.String()},
				{Label: "Storage", Value: item.Storage.String()},
				{Label: "Motherboard", Value: item.Motherboard.String()},
				{Label: "PSU", Value: item.PSU.String()},
				{Label: "Cabinet", Value: item.Cabinet.String()},
			},
		})
	}

	var html bytes.Buffer
	if err := recommendationTmpl.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("failed to execute recommendation template: %w", err)
	}

	return &RenderedMessage{
		Subject:  fmt.Sprintf("New PC Recommendation Generated for %s", form.Name),
		HTMLBody: html.String(),
	}, nil
}

// humanizeKey turns an identifier-style form key into a display label by
// inserting a space before each uppercase letter and trimming the result:
// "budgetRange" becomes "budget Range". The first letter intentionally stays
// lowercase; downstream consumers rely on this exact output.
func humanizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func defaultIfEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
