// Package notify implements the best-effort outbound call to the Telegram
// Bot API. Callers treat every failure as non-fatal: errors are returned for
// logging and counting only and never propagate to the triggering request.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TelegramConfig is the shape of the telegram_config settings entry.
type TelegramConfig struct {
	IsEnabled bool   `json:"isEnabled"`
	BotToken  string `json:"botToken"`
	ChatID    string `json:"chatId"`
}

// Configured reports whether the config is complete enough to send.
func (c TelegramConfig) Configured() bool {
	return c.IsEnabled && c.BotToken != "" && c.ChatID != ""
}

// TelegramClient posts messages through the Bot API sendMessage endpoint.
type TelegramClient struct {
	apiBase string
	client  *http.Client
}

// NewTelegramClient builds a client against the given API base URL.
func NewTelegramClient(apiBase string, timeout time.Duration) *TelegramClient {
	return &TelegramClient{
		apiBase: apiBase,
		client:  &http.Client{Timeout: timeout},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers a Markdown-formatted message to the configured chat.
func (t *TelegramClient) SendMessage(ctx context.Context, cfg TelegramConfig, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, cfg.BotToken)

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    cfg.ChatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var parsed sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !parsed.OK {
		return fmt.Errorf("telegram api: %s", parsed.Description)
	}
	return nil
}

// ContactText renders the chat message for a contact form submission.
func ContactText(name, email, subject, message string) string {
	return fmt.Sprintf(
		"📩 *New inquiry from the website*\n\n👤 *Name:* %s\n📧 *Email:* %s\n📝 *Subject:* %s\n\n💬 *Message:*\n%s",
		name, email, subject, message,
	)
}
