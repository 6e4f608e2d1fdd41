// Package session provides the client for the external session-validity
// service. The service accepts a token plus an authorization context and
// returns a validity record; this client surfaces that record opaquely,
// without retrying, caching, or interpreting partial failures.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/checkin/internal/errors"
	"github.com/allisson/checkin/internal/token/domain"
)

// Validity is the record returned by the session-validity service.
type Validity struct {
	IsValid       bool       `json:"is_valid"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	TimeRemaining int64      `json:"time_remaining_seconds"`
	SessionAge    int64      `json:"session_age_seconds"`
	Error         string     `json:"error,omitempty"`
}

type checkRequest struct {
	Token       string `json:"token"`
	AuthContext string `json:"auth_context"`
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// Client calls the session-validity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a session-validity client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check asks the session-validity service whether token still authorizes a
// check-in under authContext. The caller-supplied context bounds the round
// trip; no retry happens here. A transport or decode failure maps to
// ErrSessionUnavailable so callers can distinguish "service said no" from
// "service unreachable".
func (c *Client) Check(ctx context.Context, token, authContext string) (Validity, error) {
	payload, err := json.Marshal(checkRequest{Token: token, AuthContext: authContext})
	if err != nil {
		return Validity{}, apperrors.Wrap(err, "failed to marshal session check request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/sessions/check", bytes.NewReader(payload))
	if err != nil {
		return Validity{}, apperrors.Wrap(err, "failed to create session check request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.Must(uuid.NewV7()).String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Validity{}, apperrors.Wrap(domain.ErrSessionUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Validity{}, apperrors.Wrap(
			domain.ErrSessionUnavailable,
			fmt.Sprintf("session service returned status %d", resp.StatusCode),
		)
	}

	var validity Validity
	if err := json.NewDecoder(resp.Body).Decode(&validity); err != nil {
		return Validity{}, apperrors.Wrap(domain.ErrSessionUnavailable, err.Error())
	}

	return validity, nil
}
