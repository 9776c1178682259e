// Package expo implements the push provider backed by the Expo push API.
package expo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"relay/config"
	"relay/internal/domain/constants"
	"relay/internal/domain/entity"
	"relay/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	sendPath         = "/--/api/v2/push/send"
	maxErrorBodySize = 4 << 10
)

var uuidTokenPattern = regexp.MustCompile(`(?i)^[a-z\d]{8}-[a-z\d]{4}-[a-z\d]{4}-[a-z\d]{4}-[a-z\d]{12}$`)

// Client sends chunks of messages to the Expo push service
type Client struct {
	endpoint    string
	accessToken string
	chunkLimit  int
	httpClient  *http.Client
	logger      *slog.Logger
}

var _ service.PushProvider = (*Client)(nil)

// pushResponse is the envelope returned by the send endpoint
type pushResponse struct {
	Data   []entity.Ticket `json:"data"`
	Errors []pushError     `json:"errors"`
}

type pushError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewClient creates an Expo client from configuration
func NewClient(cfg config.ExpoConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:    strings.TrimRight(cfg.BaseURL, "/") + sendPath,
		accessToken: cfg.AccessToken,
		chunkLimit:  constants.ExpoMaxChunkSize,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (c *Client) Name() string {
	return constants.PushProviderExpo
}

func (c *Client) ChunkLimit() int {
	return c.chunkLimit
}

// ValidateToken accepts ExponentPushToken[...] / ExpoPushToken[...] and bare UUID-shaped tokens
func (c *Client) ValidateToken(token entity.PushToken) bool {
	return IsExpoPushToken(string(token))
}

// IsExpoPushToken reports whether s looks like a token issued by Expo
func IsExpoPushToken(s string) bool {
	if (strings.HasPrefix(s, "ExponentPushToken[") || strings.HasPrefix(s, "ExpoPushToken[")) &&
		strings.HasSuffix(s, "]") {
		return true
	}

	return uuidTokenPattern.MatchString(s)
}

// SendChunk posts the chunk as a JSON array and returns the tickets in message order
func (c *Client) SendChunk(ctx context.Context, chunk entity.Chunk) ([]entity.Ticket, error) {
	if len(chunk) == 0 {
		return nil, nil
	}
	if len(chunk) > c.chunkLimit {
		return nil, errors.Errorf("chunk of %d messages exceeds the Expo limit of %d", len(chunk), c.chunkLimit)
	}

	body, err := json.Marshal(chunk)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "expo push request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return nil, errors.Errorf("expo push request returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode expo push response")
	}

	if len(parsed.Errors) > 0 {
		first := parsed.Errors[0]

		return nil, errors.Errorf("expo push request rejected: %s: %s", first.Code, first.Message)
	}

	if len(parsed.Data) != len(chunk) {
		return nil, errors.Errorf("expo returned %d tickets for %d messages", len(parsed.Data), len(chunk))
	}

	c.logger.Debug("Expo chunk accepted", slog.Int("messages", len(chunk)))

	return parsed.Data, nil
}
