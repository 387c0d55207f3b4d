// ABOUTME: Main client for the Email Shield library running the analysis in-process
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package shield

import (
	"context"

	"email-shield-api/core/analysis"
	"email-shield-api/core/interfaces"
	"email-shield-api/core/search"
	"email-shield-api/infrastructure/serpapi"
)

// Client is the main entry point for the Email Shield library
type Client struct {
	analyzer interfaces.EmailAnalyzer
	config   Config
}

// NewClient creates a new Email Shield client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	provider := config.SearchProvider
	if provider == nil {
		serp, err := serpapi.NewClient(serpapi.Config{
			APIKey:  config.APIKey,
			BaseURL: config.BaseURL,
			Engine:  config.Engine,
		}, deps)
		if err != nil {
			return nil, fromCoreError(err)
		}
		provider = serp
	}

	executor := search.NewExecutor(provider, config.QueryTimeout, deps)

	return &Client{
		analyzer: analysis.NewAnalysisService(executor, deps),
		config:   config,
	}, nil
}

// AnalyzeEmail runs every scope search for the address. Only an invalid
// address produces an error; failed scopes report zero mentions.
func (c *Client) AnalyzeEmail(ctx context.Context, email string) (*EmailFeatures, error) {
	features, err := c.analyzer.AnalyzeEmail(ctx, email)
	if err != nil {
		return nil, fromCoreError(err)
	}
	return domainFeaturesToPublic(features), nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.SearchProvider != nil {
		return nil
	}

	if config.APIKey == "" {
		return NewError(ErrorTypeConfiguration, "API key is required").
			WithContext("option", "WithAPIKey")
	}

	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	return nil
}
