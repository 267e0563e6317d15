// internal/services/payments.go
package services

import (
	"github.com/hackeed/hackeed-backend/internal/payments"
)

// PaymentProvider is the payment-processor surface the services need.
// *payments.StripeClient is the production implementation; tests plug
// in fakes.
type PaymentProvider interface {
	CreateSession(customerEmail string, items []payments.LineItem) (*payments.SessionRef, error)
	ListPaidItems(sessionID string) ([]payments.PaidItem, error)
	GetSession(sessionID string) (*payments.SessionInfo, error)
	VerifyWebhook(payload []byte, sigHeader string) (*payments.Event, error)
}
