package services

import (
	"context"

	apperrors "florada/internal/errors"
	"florada/internal/logger"
	"florada/internal/messaging"
	"florada/internal/middleware"
	"florada/internal/models"
	"florada/internal/session"
)

// authService handles registration and session identity.
type authService struct {
	sessions    *session.Store
	verifier    PhoneVerifier
	countryCode string
	adminPhones []string
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(sessions *session.Store, verifier PhoneVerifier, countryCode string, adminPhones []string) AuthServicer {
	return &authService{
		sessions:    sessions,
		verifier:    verifier,
		countryCode: countryCode,
		adminPhones: adminPhones,
	}
}

// isAdmin matches the normalized phone against the allowlist, accepting
// entries written with or without the country code.
func (s *authService) isAdmin(phone string) bool {
	bare := messaging.BarePhone(phone, s.countryCode)
	for _, allowed := range s.adminPhones {
		if allowed == phone || allowed == bare {
			return true
		}
	}
	return false
}

// Register validates the phone against the gateway, creates a session and
// signs its token. Number validation fails closed; the profile fetch is
// decoration and fails open.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*session.Session, string, error) {
	phone := messaging.NormalizePhone(input.Phone, s.countryCode)
	if phone == "" {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Phone number is required")
	}

	reachable, err := s.verifier.ValidateNumber(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if !reachable {
		return nil, "", apperrors.ErrPhoneNotReachable
	}

	user := models.UserInfo{
		Name:      input.Name,
		Phone:     phone,
		EventName: input.EventName,
		EventDate: input.EventDate,
		Admin:     s.isAdmin(phone),
	}

	if profile := s.verifier.FetchProfile(ctx, phone); profile != nil && profile.PictureURL != "" {
		user.ProfilePicture = &profile.PictureURL
	}

	sess := s.sessions.Create(user)

	token, err := middleware.GenerateSessionToken(sess.ID, phone, user.Admin)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("Session registered", "session_id", sess.ID, "admin", user.Admin)
	return sess, token, nil
}

// Profile returns the registered user info for a session.
func (s *authService) Profile(sessionID string) (models.UserInfo, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return models.UserInfo{}, err
	}
	return sess.User, nil
}

// Logout discards the session. Tokens for it stay signed but dangle.
func (s *authService) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}
