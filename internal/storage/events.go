// internal/storage/events.go
package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hackeed/hackeed-backend/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// AlreadyProcessed reports whether an event id has been applied before.
func (r *EventRepository) AlreadyProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.StripeEvent{}).
		Where("stripe_event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check event log: %w", err)
	}
	return count > 0, nil
}

// Record inserts the event id with an insert-if-absent conflict policy,
// so a concurrent duplicate insert is a silent no-op.
func (r *EventRepository) Record(ctx context.Context, event *models.StripeEvent) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stripe_event_id"}},
			DoNothing: true,
		}).
		Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}
