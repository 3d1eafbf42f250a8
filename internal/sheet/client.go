package sheet

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// ValuesBaseURL is the Google Sheets values API endpoint.
	ValuesBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	// DefaultRange covers the eleven published columns.
	DefaultRange = "A1:K"
	UserAgent    = "minsk-afisha/1.0 (github.com/kulevich/minsk-afisha)"
	Timeout      = 30 * time.Second
)

// Client fetches the event dataset from the Google Sheets values API.
// One request per call, no retry; a failed or short response is a
// fetch-level error and the engine sees no events.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a values-API client for one spreadsheet range.
func NewClient(spreadsheetID, readRange, apiKey string) *Client {
	if readRange == "" {
		readRange = DefaultRange
	}
	return &Client{
		client: &http.Client{Timeout: Timeout},
		url:    fmt.Sprintf("%s/%s/values/%s?key=%s", ValuesBaseURL, spreadsheetID, readRange, apiKey),
	}
}

// valuesResponse mirrors the subset of the values API body we read.
type valuesResponse struct {
	Values [][]string `json:"values"`
}

// FetchTable fetches and splits the payload into a header row and data rows.
func (c *Client) FetchTable() (*Table, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if len(body.Values) < 2 {
		return nil, ErrNoData
	}

	return &Table{
		Headers: body.Values[0],
		Rows:    body.Values[1:],
	}, nil
}

// withURL overrides the request URL, for tests against httptest servers.
func (c *Client) withURL(url string) *Client {
	c.url = url
	return c
}
