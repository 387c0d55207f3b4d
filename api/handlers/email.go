// ABOUTME: Email analysis handler for the Huma API
// ABOUTME: Exposes POST /v1/analyze/email and shapes the aggregated scope outcomes

package handlers

import (
	"context"
	"net/http"

	"email-shield-api/api/dto/mappers"
	"email-shield-api/api/dto/requests"
	"email-shield-api/api/dto/responses"
	"email-shield-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// EmailHandler handles email analysis requests
type EmailHandler struct {
	analyzer interfaces.EmailAnalyzer
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(analyzer interfaces.EmailAnalyzer) *EmailHandler {
	return &EmailHandler{analyzer: analyzer}
}

// RegisterRoutes registers email analysis routes
func (h *EmailHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeEmail",
		Method:      http.MethodPost,
		Path:        "/v1/analyze/email",
		Summary:     "Analyze email exposure",
		Description: "Runs general, pastebin, github and stackoverflow dork searches for the address and reports estimated mention counts with top results",
		Tags:        []string{"Analysis"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.AnalyzeEmail)
}

// AnalyzeEmailInput defines the input for the AnalyzeEmail operation
type AnalyzeEmailInput struct {
	Body requests.AnalyzeEmailRequest
}

// AnalyzeEmailOutput defines the output for the AnalyzeEmail operation
type AnalyzeEmailOutput struct {
	Body responses.EmailFeaturesResponse
}

// AnalyzeEmail handles the POST /v1/analyze/email endpoint
func (h *EmailHandler) AnalyzeEmail(ctx context.Context, input *AnalyzeEmailInput) (*AnalyzeEmailOutput, error) {
	if h.analyzer == nil {
		return nil, huma.Error500InternalServerError("email analyzer is not configured")
	}

	features, err := h.analyzer.AnalyzeEmail(ctx, input.Body.Email)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &AnalyzeEmailOutput{
		Body: mappers.ToEmailFeaturesResponse(features),
	}, nil
}
