package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jdelaire/openwake/core"
)

const (
	defaultBaseURL  = "https://api.telegram.org"
	longPollTimeout = 30
	httpTimeout     = 35 * time.Second
	replyTimeout    = 10 * time.Second
)

type apiResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
}

type update struct {
	UpdateID uint64   `json:"update_id"`
	Message  *message `json:"message"`
}

type message struct {
	Chat chat   `json:"chat"`
	Date int64  `json:"date"`
	Text string `json:"text"`
}

type chat struct {
	ID int64 `json:"id"`
}

// Client talks to the Telegram Bot API. TLS trust comes from the default
// transport's system certificate pool; the client manages no certificates
// itself.
type Client struct {
	botToken string
	logger   *slog.Logger
	client   *http.Client
	baseURL  string
}

// New creates a Telegram client.
func New(botToken string, logger *slog.Logger) *Client {
	return &Client{
		botToken: botToken,
		logger:   logger,
		client:   &http.Client{Timeout: httpTimeout},
		baseURL:  defaultBaseURL,
	}
}

// WithBaseURL overrides the Telegram API base URL (for testing).
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// FetchUpdates long-polls getUpdates starting at offset, preserving backend
// order. Malformed bodies come back as *core.ParseError so the caller can
// leave its offset untouched and pick the same updates up again.
func (c *Client) FetchUpdates(ctx context.Context, offset uint64) ([]core.Update, error) {
	url := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=%d",
		c.baseURL, c.botToken, offset, longPollTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status: %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &core.ParseError{Err: err}
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("api returned ok=false")
	}

	var updates []update
	if err := json.Unmarshal(apiResp.Result, &updates); err != nil {
		return nil, &core.ParseError{Err: err}
	}

	result := make([]core.Update, 0, len(updates))
	for _, u := range updates {
		cu := core.Update{ID: u.UpdateID}
		if u.Message != nil && u.Message.Text != "" {
			cu.Message = &core.InboundMessage{
				UpdateID: u.UpdateID,
				ChatID:   u.Message.Chat.ID,
				Text:     u.Message.Text,
			}
			// A missing date stays the zero time so downstream freshness
			// checks know there is nothing to measure against.
			if u.Message.Date != 0 {
				cu.Message.Timestamp = time.Unix(u.Message.Date, 0)
			}
		}
		result = append(result, cu)
	}
	return result, nil
}

// SendReply posts a sendMessage request. The response status is logged and
// the body is not parsed.
func (c *Client) SendReply(ctx context.Context, chatID int64, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	body, err := json.Marshal(map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("encode reply: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Info("reply sent", "chat_id", chatID, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error %d", resp.StatusCode)
	}
	return nil
}
