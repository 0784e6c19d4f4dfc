// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// WebhookAdvisor implements the AdvisorService against an external
// automation webhook. The query travels as a URL parameter and the reply is
// decoded loosely: the webhook's payload shape is not under our control.
type WebhookAdvisor struct {
	webhookURL string
	client     *http.Client
}

// NewWebhookAdvisor creates a new webhook advisor. The request deadline
// comes from the caller's context; the client itself carries no timeout.
func NewWebhookAdvisor(webhookURL string) *WebhookAdvisor {
	return &WebhookAdvisor{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

// Name identifies the advisor in logs.
func (a *WebhookAdvisor) Name() string {
	return "webhook"
}

// IsAvailable checks if the advisor has a configured endpoint.
func (a *WebhookAdvisor) IsAvailable() bool {
	return a.webhookURL != ""
}

// RequestPlan sends the prompt to the webhook and returns the decoded reply.
func (a *WebhookAdvisor) RequestPlan(ctx context.Context, prompt string) (map[string]any, error) {
	endpoint, err := url.Parse(a.webhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}

	query := endpoint.Query()
	query.Set("prompt", prompt)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return decodeLoose(resp.Body)
}

// decodeLoose decodes the webhook body into a generic map. Numbers are kept
// as json.Number so peso amounts survive without float rounding. A top-level
// array unwraps to its first object.
func decodeLoose(body io.Reader) (map[string]any, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode webhook reply: %w", err)
	}

	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				return m, nil
			}
		}
		return map[string]any{}, nil
	default:
		return map[string]any{}, nil
	}
}
