package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Webhook POSTs a JSON payload to a configured HTTP endpoint (chat/push
// integrations expect this shape from most watchdog-style tools).
type Webhook struct {
	URL    string
	client *resty.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL:    url,
		client: resty.New().SetTimeout(5 * time.Second),
	}
}

func (*Webhook) Name() string { return "webhook" }

type webhookPayload struct {
	Level      string   `json:"level"`
	Message    string   `json:"message"`
	Mount      string   `json:"mount"`
	FreeGB     int      `json:"free_gb"`
	RateGBMin  int      `json:"rate_gb_per_min"`
	TopWriters []string `json:"top_writers,omitempty"`
	At         int64    `json:"at"`
}

func (w *Webhook) Send(ev Event) error {
	payload := webhookPayload{
		Level:      ev.Level,
		Message:    ev.Message,
		Mount:      ev.Mount,
		FreeGB:     ev.FreeGB,
		RateGBMin:  ev.RateGBMin,
		TopWriters: ev.TopWriters,
		At:         ev.At.Unix(),
	}

	resp, err := w.client.R().SetBody(payload).Post(w.URL)
	if err != nil {
		return fmt.Errorf("notify/webhook: post: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("notify/webhook: status %s", resp.Status())
	}
	return nil
}
