package services

import (
	"florada/internal/quote"
	"florada/internal/session"
)

// quoteService renders the printable documents for a session.
type quoteService struct {
	sessions *session.Store
	renderer *quote.Renderer
}

// NewQuoteService creates a new QuoteServicer.
func NewQuoteService(sessions *session.Store, renderer *quote.Renderer) QuoteServicer {
	return &quoteService{sessions: sessions, renderer: renderer}
}

// RenderFull produces the combined quote document. With showPrices false
// the arrangement tables become the production recipe.
func (s *quoteService) RenderFull(sessionID string, showPrices bool) ([]byte, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderFull(sess, showPrices)
}

// RenderRental produces the furniture rental document.
func (s *quoteService) RenderRental(sessionID string) ([]byte, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderRental(sess)
}

// RenderScenography produces the scenography materials document.
func (s *quoteService) RenderScenography(sessionID string) ([]byte, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderScenography(sess)
}
