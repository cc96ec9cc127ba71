// Package messaging talks to the WhatsApp gateway used to verify that a
// customer's phone number is reachable and to pull their profile info.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "florada/internal/errors"
	"florada/internal/logger"
)

// Client calls the gateway's instance-scoped endpoints. The zero value
// is not usable; construct with NewClient.
type Client struct {
	baseURL    string // overridable for tests
	apiKey     string
	instance   string
	httpClient *http.Client
}

// NewClient builds a gateway client for one messaging instance.
func NewClient(baseURL, apiKey, instance string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		instance:   instance,
		httpClient: httpClient,
	}
}

type numberCheckRequest struct {
	Numbers []string `json:"numbers"`
}

type numberCheckResult struct {
	Exists bool   `json:"exists"`
	JID    string `json:"jid"`
	Number string `json:"number"`
}

// ValidateNumber reports whether the normalized phone number is a real,
// reachable account. Gateway failures fail closed: registration must not
// proceed on an unverifiable number.
func (c *Client) ValidateNumber(ctx context.Context, phone string) (bool, error) {
	url := fmt.Sprintf("%s/chat/whatsappNumbers/%s", c.baseURL, c.instance)

	body, err := json.Marshal(numberCheckRequest{Numbers: []string{phone}})
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrValidationUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrValidationUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrValidationUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, apperrors.WithMessage(apperrors.ErrValidationUpstream,
			fmt.Sprintf("number check returned status %d", resp.StatusCode))
	}

	var results []numberCheckResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return false, apperrors.Wrap(apperrors.ErrValidationUpstream, err)
	}
	if len(results) == 0 {
		return false, nil
	}
	return results[0].Exists, nil
}

type profileRequest struct {
	Number string `json:"number"`
}

// Profile is the subset of gateway profile data the quote header uses.
type Profile struct {
	Name       string `json:"name"`
	PictureURL string `json:"picture"`
}

// FetchProfile pulls the account's display name and picture. This call
// fails open: any gateway problem returns nil with no error, since the
// profile is decoration and must never block registration.
func (c *Client) FetchProfile(ctx context.Context, phone string) *Profile {
	url := fmt.Sprintf("%s/chat/fetchProfile/%s", c.baseURL, c.instance)

	body, err := json.Marshal(profileRequest{Number: phone})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Get().Warnw("Profile fetch failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Get().Warnw("Profile fetch returned non-success status", "status", resp.StatusCode)
		return nil
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil
	}
	return &profile
}
