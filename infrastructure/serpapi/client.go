// ABOUTME: SerpApi search provider used to run dork queries against Google
// ABOUTME: Builds request parameters, decodes counts and organic results, degrades failures to empty outcomes

package serpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"

	"email-shield-api/core/domain"
	coreerrors "email-shield-api/core/errors"
	"email-shield-api/core/interfaces"
)

const (
	// DefaultBaseURL is the SerpApi JSON search endpoint
	DefaultBaseURL = "https://serpapi.com/search.json"

	// DefaultEngine selects Google as the backing search engine
	DefaultEngine = "google"

	apiName = "serpapi"
)

// Config holds the provider settings resolved at startup
type Config struct {
	APIKey  string
	BaseURL string
	Engine  string
}

// Client implements interfaces.SearchProvider on top of the SerpApi HTTP API
type Client struct {
	cfg        Config
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewClient creates a SerpApi provider. An empty API key is a configuration error.
func NewClient(cfg Config, deps interfaces.Dependencies) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &coreerrors.ConfigurationError{Key: "SERPAPI_KEY", Message: "environment variable is not set"}
	}
	if deps.HTTPClient == nil {
		return nil, &coreerrors.ConfigurationError{Key: "http_client", Message: "HTTP client not configured"}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Engine == "" {
		cfg.Engine = DefaultEngine
	}

	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &Client{
		cfg:        cfg,
		httpClient: deps.HTTPClient,
		logger:     logger,
	}, nil
}

// Search runs one query and returns its outcome. Every provider-side failure
// is logged and reported as an empty outcome.
func (c *Client) Search(ctx context.Context, query string) domain.QueryOutcome {
	outcome, err := c.search(ctx, query)
	if err != nil {
		c.logger.Warn("Search provider call failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return domain.EmptyOutcome()
	}
	return outcome
}

func (c *Client) search(ctx context.Context, query string) (domain.QueryOutcome, error) {
	resp, err := c.httpClient.Get(ctx, c.requestURL(query))
	if err != nil {
		return domain.QueryOutcome{}, coreerrors.WrapError(err, "failed to call search provider")
	}
	defer resp.Body().Close()

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return domain.QueryOutcome{}, coreerrors.WrapError(err, "failed to read response")
	}

	var payload searchResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
			return domain.QueryOutcome{}, &coreerrors.ExternalAPIError{
				StatusCode: resp.StatusCode(),
				Message:    "unexpected response",
				API:        apiName,
			}
		}
		return domain.QueryOutcome{}, coreerrors.WrapError(err, "failed to parse search results")
	}

	if payload.Error != "" || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		message := payload.Error
		if message == "" {
			message = "unexpected status"
		}
		return domain.QueryOutcome{}, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    message,
			API:        apiName,
		}
	}

	total, err := parseTotalResults(payload.SearchInformation.TotalResults)
	if err != nil {
		return domain.QueryOutcome{}, err
	}

	return domain.QueryOutcome{
		TotalCount: total,
		Items:      toResultItems(payload.OrganicResults),
	}, nil
}

// requestURL assembles the provider URL for a query
func (c *Client) requestURL(query string) string {
	params := url.Values{}
	params.Set("engine", c.cfg.Engine)
	params.Set("q", query)
	params.Set("api_key", c.cfg.APIKey)
	params.Set("num", strconv.Itoa(domain.MaxResultsPerQuery))

	return c.cfg.BaseURL + "?" + params.Encode()
}

// searchResponse is the subset of the SerpApi response this service reads
type searchResponse struct {
	Error             string `json:"error"`
	SearchInformation struct {
		TotalResults json.RawMessage `json:"total_results"`
	} `json:"search_information"`
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

func toResultItems(results []organicResult) []domain.SearchResultItem {
	if len(results) > domain.MaxResultsPerQuery {
		results = results[:domain.MaxResultsPerQuery]
	}

	items := make([]domain.SearchResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, domain.SearchResultItem{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
			Source:  r.Source,
		})
	}
	return items
}
