// ABOUTME: Liveness handler for the Huma API
// ABOUTME: Reports healthy without touching the search provider

package handlers

import (
	"context"
	"net/http"

	"email-shield-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// HealthyStatus is the only status reported by GET /health
const HealthyStatus = "healthy"

// HealthHandler handles liveness probes
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: responses.HealthResponse{Status: HealthyStatus},
	}, nil
}
