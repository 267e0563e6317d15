// internal/services/verification_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hackeed/hackeed-backend/internal/models"
	"github.com/hackeed/hackeed-backend/internal/payments"
)

// OrderFinder looks up the locally recorded order for a session, if
// the webhook has already landed.
type OrderFinder interface {
	FindBySession(ctx context.Context, sessionID string) (*models.Order, error)
}

type VerificationService struct {
	payments PaymentProvider
	orders   OrderFinder
}

func NewVerificationService(provider PaymentProvider, orders OrderFinder) *VerificationService {
	return &VerificationService{
		payments: provider,
		orders:   orders,
	}
}

// VerificationResult pairs the processor's view of the session with
// the locally recorded order. Order is nil until the webhook for the
// session has been processed.
type VerificationResult struct {
	Session         *payments.SessionInfo `json:"session"`
	Order           *models.Order         `json:"order,omitempty"`
	PaymentVerified bool                  `json:"paymentVerified"`
}

// VerifySession fetches the session from the processor and reports
// whether payment completed. The processor is authoritative; the local
// order is attached as supporting detail when present.
func (s *VerificationService) VerifySession(ctx context.Context, sessionID string) (*VerificationResult, error) {
	session, err := s.payments.GetSession(sessionID)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Verify: failed to fetch session")
		return nil, err
	}

	order, err := s.orders.FindBySession(ctx, sessionID)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Verify: failed to load order")
		return nil, err
	}

	return &VerificationResult{
		Session:         session,
		Order:           order,
		PaymentVerified: session.PaymentStatus == "paid",
	}, nil
}
