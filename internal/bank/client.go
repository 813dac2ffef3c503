package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the Monobank personal API endpoint.
const DefaultBaseURL = "https://api.monobank.ua"

// DefaultAccount is Monobank's sentinel for the primary account.
const DefaultAccount = "0"

// requestTimeout caps a single statement fetch.
const requestTimeout = 30 * time.Second

// ErrTokenMissing means no Monobank credential is configured. It is reported
// at client construction, before any network attempt.
var ErrTokenMissing = errors.New("monobank token is not configured")

// UpstreamError is a non-200 reply from the bank, kept verbatim so the
// gateway can pass the upstream status through to its own caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("monobank returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the Monobank personal statement API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a Monobank client. An empty baseURL selects the
// production endpoint.
func NewClient(token, baseURL string) (*Client, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		token:      token,
	}, nil
}

// Statement fetches the raw statement entries for an account between from and
// to. One attempt, no retry; a non-200 reply comes back as an UpstreamError.
func (c *Client) Statement(ctx context.Context, account string, from, to time.Time) ([]StatementEntry, error) {
	url := fmt.Sprintf("%s/personal/statement/%s/%d/%d", c.baseURL, account, from.Unix(), to.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building statement request: %w", err)
	}
	req.Header.Set("X-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching statement: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading statement response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var entries []StatementEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding statement response: %w", err)
	}

	return entries, nil
}
