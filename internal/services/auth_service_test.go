package services

import (
	"context"
	"testing"

	apperrors "florada/internal/errors"
	"florada/internal/messaging"
	"florada/internal/session"
	"florada/internal/testutil"
)

type fakeVerifier struct {
	reachable bool
	err       error
	profile   *messaging.Profile

	validated string
}

func (f *fakeVerifier) ValidateNumber(_ context.Context, phone string) (bool, error) {
	f.validated = phone
	return f.reachable, f.err
}

func (f *fakeVerifier) FetchProfile(_ context.Context, _ string) *messaging.Profile {
	return f.profile
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_session_and_token", func(t *testing.T) {
		store := session.NewStore()
		verifier := &fakeVerifier{reachable: true}
		svc := NewAuthService(store, verifier, "55", nil)

		sess, token, err := svc.Register(ctx, RegisterInput{
			Name:      "Maria Silva",
			Phone:     "(31) 99988-7766",
			EventName: "Casamento Ana e Pedro",
			EventDate: "2025-12-20",
		})
		testutil.AssertNoError(t, err)

		if sess.User.Phone != "5531999887766" {
			t.Errorf("stored phone = %q, want normalized form", sess.User.Phone)
		}
		if verifier.validated != "5531999887766" {
			t.Errorf("validated phone = %q, want normalized form", verifier.validated)
		}
		if token == "" {
			t.Error("expected a signed token")
		}
		if sess.User.Admin {
			t.Error("phone outside the allowlist must not be admin")
		}
		if store.Count() != 1 {
			t.Errorf("store holds %d sessions, want 1", store.Count())
		}
	})

	t.Run("empty_phone", func(t *testing.T) {
		svc := NewAuthService(session.NewStore(), &fakeVerifier{reachable: true}, "55", nil)

		_, _, err := svc.Register(ctx, RegisterInput{Name: "Maria Silva", Phone: "() -"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unreachable_number", func(t *testing.T) {
		store := session.NewStore()
		svc := NewAuthService(store, &fakeVerifier{reachable: false}, "55", nil)

		_, _, err := svc.Register(ctx, RegisterInput{Name: "Maria Silva", Phone: "31999887766"})
		testutil.AssertAppError(t, err, "PHONE_NOT_REACHABLE")
		if store.Count() != 0 {
			t.Error("failed registration must not leave a session behind")
		}
	})

	t.Run("gateway_error_propagates", func(t *testing.T) {
		verifier := &fakeVerifier{err: apperrors.ErrValidationUpstream}
		svc := NewAuthService(session.NewStore(), verifier, "55", nil)

		_, _, err := svc.Register(ctx, RegisterInput{Name: "Maria Silva", Phone: "31999887766"})
		testutil.AssertAppError(t, err, "VALIDATION_UNAVAILABLE")
	})

	t.Run("admin_allowlist", func(t *testing.T) {
		tests := []struct {
			name    string
			allowed []string
		}{
			{"full_number", []string{"5531999887766"}},
			{"bare_number", []string{"31999887766"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewAuthService(session.NewStore(), &fakeVerifier{reachable: true}, "55", tt.allowed)

				sess, _, err := svc.Register(ctx, RegisterInput{Name: "Dona da Loja", Phone: "31999887766"})
				testutil.AssertNoError(t, err)
				if !sess.User.Admin {
					t.Error("expected allowlisted phone to be admin")
				}
			})
		}
	})

	t.Run("profile_picture", func(t *testing.T) {
		verifier := &fakeVerifier{
			reachable: true,
			profile:   &messaging.Profile{Name: "Maria", PictureURL: "https://cdn.example.com/maria.jpg"},
		}
		svc := NewAuthService(session.NewStore(), verifier, "55", nil)

		sess, _, err := svc.Register(ctx, RegisterInput{Name: "Maria Silva", Phone: "31999887766"})
		testutil.AssertNoError(t, err)
		if sess.User.ProfilePicture == nil || *sess.User.ProfilePicture != "https://cdn.example.com/maria.jpg" {
			t.Error("expected the fetched profile picture on the session")
		}
	})

	t.Run("profile_fetch_failure_is_ignored", func(t *testing.T) {
		svc := NewAuthService(session.NewStore(), &fakeVerifier{reachable: true, profile: nil}, "55", nil)

		sess, _, err := svc.Register(ctx, RegisterInput{Name: "Maria Silva", Phone: "31999887766"})
		testutil.AssertNoError(t, err)
		if sess.User.ProfilePicture != nil {
			t.Error("expected no profile picture when the fetch fails")
		}
	})
}

func TestProfileAndLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore()
	svc := NewAuthService(store, &fakeVerifier{reachable: true}, "55", nil)

	sess, _, err := svc.Register(ctx, RegisterInput{Name: "Maria Silva", Phone: "31999887766"})
	testutil.AssertNoError(t, err)

	user, err := svc.Profile(sess.ID)
	testutil.AssertNoError(t, err)
	if user.Name != "Maria Silva" {
		t.Errorf("name = %q", user.Name)
	}

	svc.Logout(sess.ID)
	_, err = svc.Profile(sess.ID)
	testutil.AssertAppError(t, err, "SESSION_NOT_FOUND")
}
