// internal/services/webhook_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hackeed/hackeed-backend/internal/models"
	"github.com/hackeed/hackeed-backend/internal/payments"
	"github.com/hackeed/hackeed-backend/internal/storage"
)

// ErrInvalidSignature marks a webhook whose signature did not verify
// against the shared secret. Nothing else runs for such requests.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// InventoryWriter applies paid quantities to stock.
type InventoryWriter interface {
	DecrementStock(ctx context.Context, productID string, qty int64) error
	DecrementVariantStock(ctx context.Context, productID, optionKey string, qty int64) error
}

// EventLog is the processed-event dedup guard.
type EventLog interface {
	AlreadyProcessed(ctx context.Context, eventID string) (bool, error)
	Record(ctx context.Context, event *models.StripeEvent) error
}

type OrderWriter interface {
	UpsertBySession(ctx context.Context, order *models.Order) error
}

type WebhookService struct {
	payments  PaymentProvider
	inventory InventoryWriter
	events    EventLog
	orders    OrderWriter
}

func NewWebhookService(provider PaymentProvider, inventory InventoryWriter, events EventLog, orders OrderWriter) *WebhookService {
	return &WebhookService{
		payments:  provider,
		inventory: inventory,
		events:    events,
		orders:    orders,
	}
}

// HandleEvent verifies and applies one webhook delivery. Signature
// failure returns ErrInvalidSignature; event types other than
// completed checkouts are acknowledged without inventory effect; a
// redelivered event id is a no-op. Line-item anomalies (missing
// metadata, vanished product or option) are logged and skipped, never
// aborting the rest of the event.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.payments.VerifyWebhook(payload, sigHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	log := logrus.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	})

	if event.Type != payments.EventTypeCheckoutCompleted {
		return s.recordEvent(ctx, event)
	}

	processed, err := s.events.AlreadyProcessed(ctx, event.ID)
	if err != nil {
		return err
	}
	if processed {
		log.Info("Webhook: event already processed, skipping")
		return nil
	}

	var session completedSession
	if err := json.Unmarshal(event.Data, &session); err != nil {
		return fmt.Errorf("failed to decode session payload: %w", err)
	}

	items, err := s.payments.ListPaidItems(session.ID)
	if err != nil {
		return fmt.Errorf("failed to list session line items: %w", err)
	}

	for _, item := range items {
		if err := s.applyLineItem(ctx, log, item); err != nil {
			return err
		}
	}

	if err := s.recordOrder(ctx, &session, items); err != nil {
		return err
	}

	return s.recordEvent(ctx, event)
}

type completedSession struct {
	ID              string `json:"id"`
	AmountTotal     int64  `json:"amount_total"`
	Currency        string `json:"currency"`
	PaymentStatus   string `json:"payment_status"`
	CustomerEmail   string `json:"customer_email"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

func (s *WebhookService) applyLineItem(ctx context.Context, log *logrus.Entry, item payments.PaidItem) error {
	productID := item.Metadata["product_id"]
	if productID == "" {
		// Legacy or manually created sessions may lack metadata.
		log.WithField("line_name", item.ProductName).Warn("Webhook: line item without product_id metadata")
		return nil
	}

	optionKey := item.Metadata["variant_option_id"]
	if optionKey != "" {
		err := s.inventory.DecrementVariantStock(ctx, productID, optionKey, item.Quantity)
		switch {
		case errors.Is(err, storage.ErrProductNotFound):
			log.WithField("product_id", productID).Error("Webhook: product not found")
			return nil
		case errors.Is(err, storage.ErrVariantNotFound):
			log.WithFields(logrus.Fields{
				"product_id": productID,
				"variant":    optionKey,
			}).Error("Webhook: variant not found")
			return nil
		case err != nil:
			return err
		}

		log.WithFields(logrus.Fields{
			"product_id": productID,
			"variant":    optionKey,
			"qty":        item.Quantity,
		}).Info("Webhook: variant stock decremented")
		return nil
	}

	err := s.inventory.DecrementStock(ctx, productID, item.Quantity)
	if errors.Is(err, storage.ErrProductNotFound) {
		log.WithField("product_id", productID).Error("Webhook: product not found")
		return nil
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"product_id": productID,
		"qty":        item.Quantity,
	}).Info("Webhook: stock decremented")
	return nil
}

func (s *WebhookService) recordOrder(ctx context.Context, session *completedSession, items []payments.PaidItem) error {
	email := session.CustomerEmail
	if email == "" {
		email = session.CustomerDetails.Email
	}

	lines := make([]interface{}, 0, len(items))
	for _, item := range items {
		lines = append(lines, map[string]interface{}{
			"name":              item.ProductName,
			"quantity":          item.Quantity,
			"product_id":        item.Metadata["product_id"],
			"variant_option_id": item.Metadata["variant_option_id"],
		})
	}

	return s.orders.UpsertBySession(ctx, &models.Order{
		StripeSessionID:  session.ID,
		CustomerEmail:    email,
		AmountTotalCents: session.AmountTotal,
		Currency:         session.Currency,
		PaymentStatus:    session.PaymentStatus,
		Items:            models.JSONB{"lines": lines},
	})
}

func (s *WebhookService) recordEvent(ctx context.Context, event *payments.Event) error {
	var data models.JSONB
	if len(event.Data) > 0 {
		// Best effort; an undecodable payload still gets its id logged.
		_ = json.Unmarshal(event.Data, &data)
	}

	return s.events.Record(ctx, &models.StripeEvent{
		StripeEventID: event.ID,
		EventType:     event.Type,
		Data:          data,
		Processed:     true,
	})
}
