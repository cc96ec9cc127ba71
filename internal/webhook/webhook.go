// Package webhook forwards confirmed orders to the external automation
// endpoint that notifies the shop.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "florada/internal/errors"
	"florada/internal/models"
)

// OrderItem is one confirmed arrangement in the submitted order.
type OrderItem struct {
	Type      string              `json:"type"`
	Quantity  int                 `json:"quantity"`
	UnitPrice string              `json:"unit_price"`
	Total     string              `json:"total"`
	Flowers   []models.FlowerLine `json:"flowers"`
}

// OrderPayload is the body posted to the order endpoint.
type OrderPayload struct {
	Customer  models.UserInfo `json:"customer"`
	Items     []OrderItem     `json:"items"`
	Total     string          `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// Client posts orders to a single configured URL.
type Client struct {
	url        string // overridable for tests
	httpClient *http.Client
}

// NewClient builds an order submitter for the configured endpoint.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{url: url, httpClient: httpClient}
}

// SubmitOrder posts the payload. Any non-2xx response is an error
// carrying the status and response body, so failures are surfaced to
// the operator rather than silently dropped.
func (c *Client) SubmitOrder(ctx context.Context, payload OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWebhookFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWebhookFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrWebhookFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return apperrors.WithMessage(apperrors.ErrWebhookFailed,
			fmt.Sprintf("order endpoint returned status %d: %s", resp.StatusCode, string(respBody)))
	}
	return nil
}
