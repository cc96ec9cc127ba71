package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sess-1", "5531999887766", true)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("session id = %q", claims.SessionID)
	}
	if claims.Phone != "5531999887766" {
		t.Errorf("phone = %q", claims.Phone)
	}
	if !claims.Admin {
		t.Error("expected admin claim")
	}
	if claims.Issuer != "florada-api" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseSessionToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func authTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString("sessionID")})
	})
	router.GET("/admin", AuthMiddleware(), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := authTestRouter()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing_header", "", http.StatusUnauthorized},
		{"wrong_scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage_token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}

	t.Run("valid_token", func(t *testing.T) {
		token, err := GenerateSessionToken("sess-1", "5531999887766", false)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestAdminRequired(t *testing.T) {
	router := authTestRouter()

	t.Run("non_admin_forbidden", func(t *testing.T) {
		token, _ := GenerateSessionToken("sess-1", "5531999887766", false)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("admin_allowed", func(t *testing.T) {
		token, _ := GenerateSessionToken("sess-1", "5531999887766", true)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}
