package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akulinin/duochat/internal/core"
	"github.com/akulinin/duochat/internal/proto"
)

// DefaultTimeout bounds every request so a hung server stalls at most one
// poll tick instead of the whole loop.
const DefaultTimeout = 3 * time.Second

// Client is the HTTP client for the synchronization endpoint. Every request
// carries a per-process instance id so server logs can tell pollers apart.
type Client struct {
	baseURL string
	http    *http.Client
	id      string
	log     *zerolog.Logger
}

// New creates a client for the server at baseURL. A zero timeout falls back
// to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		id:      uuid.NewString(),
		log:     logger,
	}
}

// ID returns the per-process client instance id.
func (c *Client) ID() string {
	return c.id
}

// Health probes server liveness. Used once at startup; a failure there is
// fatal for the client process.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// LiveState fetches the current live message and speaker.
func (c *Client) LiveState(ctx context.Context) (string, core.SpeakerID, error) {
	resp, err := c.do(ctx, http.MethodGet, "/get_message", nil)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("get_message: unexpected status %d", resp.StatusCode)
	}

	var body proto.LiveStateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", 0, fmt.Errorf("decode live state: %w", err)
	}
	return body.Message, core.SpeakerID(body.ID), nil
}

// History fetches the full message log, most recent first.
func (c *Client) History(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/show_history", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("show_history: unexpected status %d", resp.StatusCode)
	}

	var body proto.HistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return body.Msg, nil
}

// Send submits a display-formatted message for the given speaker.
func (c *Client) Send(ctx context.Context, message string, speaker core.SpeakerID) error {
	params := url.Values{}
	params.Set("message", message)
	params.Set("char_id", strconv.Itoa(int(speaker)))

	resp, err := c.do(ctx, http.MethodPost, "/send_message?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var wireErr proto.Error
		if err := json.NewDecoder(resp.Body).Decode(&wireErr); err == nil && wireErr.Code != "" {
			return fmt.Errorf("send_message rejected: %s (%s)", wireErr.Msg, wireErr.Code)
		}
		return fmt.Errorf("send_message: unexpected status %d", resp.StatusCode)
	}

	var body proto.SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode send response: %w", err)
	}
	if body.Code != proto.StatusSuccess {
		return fmt.Errorf("send_message: unexpected code %q", body.Code)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Client-ID", c.id)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
