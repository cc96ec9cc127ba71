package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"florada/internal/testutil"
)

func TestValidateNumber(t *testing.T) {
	t.Run("reachable_number", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody numberCheckRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("apikey")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			json.NewEncoder(w).Encode([]numberCheckResult{
				{Exists: true, JID: "5531999887766@s.whatsapp.net", Number: "5531999887766"},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "main", server.Client())
		ok, err := client.ValidateNumber(context.Background(), "5531999887766")
		testutil.AssertNoError(t, err)
		if !ok {
			t.Error("expected number to be reachable")
		}
		if gotPath != "/chat/whatsappNumbers/main" {
			t.Errorf("path = %q", gotPath)
		}
		if gotKey != "secret" {
			t.Errorf("apikey = %q", gotKey)
		}
		if len(gotBody.Numbers) != 1 || gotBody.Numbers[0] != "5531999887766" {
			t.Errorf("request numbers = %v", gotBody.Numbers)
		}
	})

	t.Run("unknown_number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]numberCheckResult{{Exists: false}})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "main", server.Client())
		ok, err := client.ValidateNumber(context.Background(), "5531000000000")
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected number to be unreachable")
		}
	})

	t.Run("empty_result_means_unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]numberCheckResult{})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "main", server.Client())
		ok, err := client.ValidateNumber(context.Background(), "5531000000000")
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected empty result to read as unreachable")
		}
	})

	t.Run("gateway_error_fails_closed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "main", server.Client())
		ok, err := client.ValidateNumber(context.Background(), "5531999887766")
		testutil.AssertAppError(t, err, "VALIDATION_UNAVAILABLE")
		if ok {
			t.Error("expected false on gateway error")
		}
	})

	t.Run("connection_error_fails_closed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, "secret", "main", nil)
		_, err := client.ValidateNumber(context.Background(), "5531999887766")
		testutil.AssertAppError(t, err, "VALIDATION_UNAVAILABLE")
	})
}

func TestFetchProfile(t *testing.T) {
	t.Run("returns_profile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/fetchProfile/main" {
				t.Errorf("path = %q", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]string{
				"name":    "Maria Silva",
				"picture": "https://cdn.example.com/maria.jpg",
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "main", server.Client())
		profile := client.FetchProfile(context.Background(), "5531999887766")
		if profile == nil {
			t.Fatal("expected a profile")
		}
		if profile.Name != "Maria Silva" {
			t.Errorf("name = %q", profile.Name)
		}
		if profile.PictureURL != "https://cdn.example.com/maria.jpg" {
			t.Errorf("picture = %q", profile.PictureURL)
		}
	})

	t.Run("gateway_error_fails_open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "main", server.Client())
		if profile := client.FetchProfile(context.Background(), "5531999887766"); profile != nil {
			t.Errorf("expected nil profile on gateway error, got %+v", profile)
		}
	})

	t.Run("connection_error_fails_open", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, "secret", "main", nil)
		if profile := client.FetchProfile(context.Background(), "5531999887766"); profile != nil {
			t.Errorf("expected nil profile on connection error, got %+v", profile)
		}
	})
}
