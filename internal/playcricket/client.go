package playcricket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// snippetLen bounds how much of an upstream error body is carried in the error.
const snippetLen = 120

// APIClient is the Play-Cricket API client.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new Play-Cricket client.
func NewClient() PlayCricketClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    "https://api.play-cricket.com/api/v2",
	}
}

// Ensure APIClient implements the PlayCricketClient interface.
var _ PlayCricketClient = (*APIClient)(nil)

// GetMatches fetches the raw matches.json payload for one club/team/season.
func (c *APIClient) GetMatches(apiKey string, q MatchesQuery) (map[string]any, error) {
	params := url.Values{}
	params.Set("club_id", q.ClubID)
	params.Set("team_id", q.TeamID)
	params.Set("season", strconv.Itoa(q.Season))
	params.Set("match_status", string(q.MatchStatus))
	return c.fetch("matches.json", apiKey, params)
}

// fetch performs one authenticated GET against the API. The resolved key is
// set after the caller params so it can never be overridden by them.
func (c *APIClient) fetch(endpoint string, apiKey string, params url.Values) (map[string]any, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("apikey", apiKey)

	requestURL := fmt.Sprintf("%s/%s?%s", c.BaseURL, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting Play-Cricket API", "endpoint", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		snippet := string(body)
		if len(snippet) > snippetLen {
			snippet = snippet[:snippetLen]
		}
		log.Error("Received non-OK HTTP status from Play-Cricket API", "status", resp.StatusCode, "body", snippet)
		return nil, &UpstreamError{Status: resp.StatusCode, Snippet: snippet}
	}

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &TransportError{Cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return parsed, nil
}
