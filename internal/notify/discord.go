package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Notifier sends a best-effort alert about a new inquiry. Failures are
// the caller's to log and swallow; they must never fail the inquiry.
type Notifier interface {
	Notify(ctx context.Context, name, phone, message string) error
}

// embedColor is the emerald accent used by the landing page.
const embedColor = 0x10B981

// Discord posts new-inquiry alerts to a Discord webhook.
type Discord struct {
	webhookURL string
	client     *http.Client
}

// NewDiscord creates a Discord notifier. An empty webhook URL turns
// every Notify call into a logged no-op.
func NewDiscord(webhookURL string) *Discord {
	return &Discord{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Footer    embedFooter  `json:"footer"`
	Timestamp string       `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// Notify posts a formatted alert for a new inquiry.
func (d *Discord) Notify(ctx context.Context, name, phone, message string) error {
	if d.webhookURL == "" {
		slog.Warn("discord webhook url is not configured, skipping notification")
		return nil
	}

	if message == "" {
		message = "(문의 내용 없음)"
	}

	payload := webhookPayload{
		Embeds: []embed{{
			Title: "새로운 상담 문의가 접수되었습니다!",
			Color: embedColor,
			Fields: []embedField{
				{Name: "이름", Value: name, Inline: true},
				{Name: "전화번호", Value: phone, Inline: true},
				{Name: "문의 내용", Value: message, Inline: false},
			},
			Footer:    embedFooter{Text: "로켓콜-분양"},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
