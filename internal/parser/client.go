package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is an HTTP client for the match text parsing service.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new parser client pointed at the given base URL.
func NewClient(baseURL string) MatchParser {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the MatchParser interface.
var _ MatchParser = (*APIClient)(nil)

// ParseMatchText sends free-form match text to the parsing service and
// returns the structured result.
func (c *APIClient) ParseMatchText(ctx context.Context, text string) (ParsedMatch, error) {
	url := fmt.Sprintf("%s/v1/parse", c.BaseURL)

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return ParsedMatch{}, fmt.Errorf("failed to marshal parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return ParsedMatch{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting match text parse", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ParsedMatch{}, fmt.Errorf("failed to call parsing service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ParsedMatch{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return ParsedMatch{}, fmt.Errorf("parsing service returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed ParsedMatch
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ParsedMatch{}, fmt.Errorf("failed to unmarshal parse response: %w", err)
	}

	log.Debug("Parsed match text", "winners", parsed.WinnerNames, "losers", parsed.LoserNames, "score", parsed.Score)
	return parsed, nil
}
