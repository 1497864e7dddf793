// Package telegram implements a minimal Bot API client and update poller
// over plain HTTPS JSON, covering only the surface the bot needs.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akravets/dbrain-bot/internal/orchestrator"
)

const defaultBaseURL = "https://api.telegram.org"

// maxVoiceBytes caps voice note downloads. The Bot API itself stops serving
// files past 20MB, this just fails earlier and predictably.
const maxVoiceBytes = 20 << 20

// APIError is a non-ok Bot API response.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// Client talks to the Telegram Bot API. It satisfies orchestrator.Transport.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API host, used in tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Bot API client for the given token.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, errors.New("telegram: bot token is required")
	}
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		// No overall timeout: getUpdates long-polls and Execute-backed
		// edits ride on caller contexts instead.
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// call POSTs one Bot API method and decodes the result envelope.
func (c *Client) call(ctx context.Context, method string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: encode request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("telegram %s: decode response: %w", method, err)
	}
	if !env.Ok {
		return &APIError{Method: method, Code: env.ErrorCode, Description: env.Description}
	}
	if result != nil {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}
	return nil
}

// GetUpdates long-polls for updates past the given offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	req := getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout.Seconds()),
		AllowedUpdates: []string{"message"},
	}
	var updates []Update
	if err := c.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// Send posts an HTML-formatted message.
func (c *Client) Send(ctx context.Context, chatID int64, text string) (orchestrator.MessageRef, error) {
	return c.send(ctx, sendMessageRequest{ChatID: chatID, Text: text, ParseMode: "HTML"})
}

// SendPlain posts a message without any parse mode.
func (c *Client) SendPlain(ctx context.Context, chatID int64, text string) (orchestrator.MessageRef, error) {
	return c.send(ctx, sendMessageRequest{ChatID: chatID, Text: text})
}

func (c *Client) send(ctx context.Context, req sendMessageRequest) (orchestrator.MessageRef, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", req, &msg); err != nil {
		return orchestrator.MessageRef{}, err
	}
	return orchestrator.MessageRef{ChatID: msg.Chat.ID, MessageID: msg.MessageID}, nil
}

// Edit replaces a sent message's text, HTML-formatted.
func (c *Client) Edit(ctx context.Context, ref orchestrator.MessageRef, text string) error {
	return c.call(ctx, "editMessageText", editMessageTextRequest{
		ChatID:    ref.ChatID,
		MessageID: ref.MessageID,
		Text:      text,
		ParseMode: "HTML",
	}, nil)
}

// EditPlain replaces a sent message's text without a parse mode.
func (c *Client) EditPlain(ctx context.Context, ref orchestrator.MessageRef, text string) error {
	return c.call(ctx, "editMessageText", editMessageTextRequest{
		ChatID:    ref.ChatID,
		MessageID: ref.MessageID,
		Text:      text,
	}, nil)
}

// DownloadVoice fetches a voice note's bytes via getFile.
func (c *Client) DownloadVoice(ctx context.Context, fileID string) ([]byte, error) {
	var f File
	if err := c.call(ctx, "getFile", getFileRequest{FileID: fileID}, &f); err != nil {
		return nil, err
	}
	if f.FilePath == "" {
		return nil, fmt.Errorf("telegram getFile: no file_path for %s", fileID)
	}

	url := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, f.FilePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("telegram download: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram download: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxVoiceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("telegram download: read body: %w", err)
	}
	if len(data) > maxVoiceBytes {
		return nil, fmt.Errorf("telegram download: file exceeds %d bytes", maxVoiceBytes)
	}
	return data, nil
}
