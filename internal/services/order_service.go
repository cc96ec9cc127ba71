package services

import (
	"context"
	"time"

	apperrors "florada/internal/errors"
	"florada/internal/logger"
	"florada/internal/quote"
	"florada/internal/session"
	"florada/internal/webhook"
)

// orderService confirms the arrangement order and forwards it to the
// automation endpoint.
type orderService struct {
	sessions  *session.Store
	submitter OrderSubmitter
}

// NewOrderService creates a new OrderServicer.
func NewOrderService(sessions *session.Store, submitter OrderSubmitter) OrderServicer {
	return &orderService{sessions: sessions, submitter: submitter}
}

// SubmitOrder builds the payload from the session's saved arrangements
// and posts it. An order with no arrangements is rejected.
func (s *orderService) SubmitOrder(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	if len(sess.Arrangements) == 0 {
		return apperrors.ErrEmptyQuote
	}

	payload := webhook.OrderPayload{
		Customer:  sess.User,
		Total:     quote.FormatBRL(sess.ArrangementsTotal()),
		CreatedAt: time.Now(),
	}
	for _, a := range sess.Arrangements {
		payload.Items = append(payload.Items, webhook.OrderItem{
			Type:      string(a.Type),
			Quantity:  a.Quantity,
			UnitPrice: quote.FormatBRL(a.UnitPrice),
			Total:     quote.FormatBRL(a.LineTotal()),
			Flowers:   a.Flowers,
		})
	}

	if err := s.submitter.SubmitOrder(ctx, payload); err != nil {
		return err
	}

	logger.Get().Infow("Order submitted", "session_id", sessionID, "items", len(payload.Items))
	return nil
}
