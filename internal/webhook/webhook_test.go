package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "florada/internal/errors"
	"florada/internal/models"
	"florada/internal/testutil"
)

func samplePayload() OrderPayload {
	return OrderPayload{
		Customer: models.UserInfo{
			Name:      "Maria Silva",
			Phone:     "5531999887766",
			EventName: "Casamento Ana e Pedro",
			EventDate: "2025-12-20",
		},
		Items: []OrderItem{
			{
				Type:      "Mesa",
				Quantity:  2,
				UnitPrice: "R$ 138,00",
				Total:     "R$ 276,00",
			},
		},
		Total:     "R$ 276,00",
		CreatedAt: time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC),
	}
}

func TestSubmitOrder(t *testing.T) {
	t.Run("posts_payload", func(t *testing.T) {
		var got OrderPayload
		var contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("failed to decode order body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client())
		err := client.SubmitOrder(context.Background(), samplePayload())
		testutil.AssertNoError(t, err)

		if contentType != "application/json" {
			t.Errorf("Content-Type = %q", contentType)
		}
		if got.Customer.Name != "Maria Silva" {
			t.Errorf("customer name = %q", got.Customer.Name)
		}
		if len(got.Items) != 1 || got.Items[0].Total != "R$ 276,00" {
			t.Errorf("items = %+v", got.Items)
		}
	})

	t.Run("non_success_status_is_an_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("workflow disabled"))
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client())
		err := client.SubmitOrder(context.Background(), samplePayload())
		testutil.AssertAppError(t, err, "WEBHOOK_FAILED")

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if !strings.Contains(appErr.Message, "500") || !strings.Contains(appErr.Message, "workflow disabled") {
				t.Errorf("expected status and body in message, got %q", appErr.Message)
			}
		}
	})

	t.Run("connection_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, nil)
		err := client.SubmitOrder(context.Background(), samplePayload())
		testutil.AssertAppError(t, err, "WEBHOOK_FAILED")
	})
}
