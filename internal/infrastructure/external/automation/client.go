package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/meetmind-team/meetmind-backend/pkg/config"
)

// ReminderPayload is the shape posted to the automation webhook. The
// automation platform uses meeting_id to call back with the created link.
type ReminderPayload struct {
	MeetingID      string `json:"meeting_id"`
	MeetingTitle   string `json:"meeting_title"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	MeetingMessage string `json:"meeting_message"`
	AttendeeEmails string `json:"attendee_emails"`
}

// Client posts reminder payloads to the automation platform webhook. The
// call is fire-and-forget from the business perspective: a 2xx means
// accepted for processing, not that the meeting link exists yet.
type Client struct {
	webhookURL string
	client     *http.Client
}

// NewClient creates an automation webhook client using values from the
// provided config.
func NewClient(cfg *config.AutomationConfig) *Client {
	timeout := 30 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	var url string
	if cfg != nil {
		url = cfg.WebhookURL
	}
	return &Client{
		webhookURL: url,
		client:     &http.Client{Timeout: timeout},
	}
}

// Notify delivers the payload once. No retries; the caller compensates on
// failure.
func (c *Client) Notify(ctx context.Context, payload ReminderPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("automation webhook returned status %d", resp.StatusCode)
	}
	return nil
}
