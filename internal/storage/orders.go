// internal/storage/orders.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hackeed/hackeed-backend/internal/models"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// UpsertBySession creates or refreshes the order row for a checkout
// session. Webhook redeliveries land on the same row.
func (r *OrderRepository) UpsertBySession(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "stripe_session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_email", "amount_total_cents", "currency", "payment_status", "items", "updated_at",
			}),
		}).
		Create(order).Error
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}
	return nil
}

// FindBySession returns the stored order for a session id, or nil when
// none exists yet.
func (r *OrderRepository) FindBySession(ctx context.Context, sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("stripe_session_id = ?", sessionID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}
