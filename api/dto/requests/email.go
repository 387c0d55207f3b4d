// ABOUTME: Request DTOs for email analysis endpoints
// ABOUTME: Email syntax is checked by the analysis service so malformed input maps to a 400

package requests

// AnalyzeEmailRequest represents the request body for POST /v1/analyze/email.
// Unknown body fields are ignored.
type AnalyzeEmailRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// Email is the address to search for
	Email string `json:"email,omitempty" example:"someone@example.com" doc:"Email address to analyze"`
}
