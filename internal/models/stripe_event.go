// internal/models/stripe_event.go
package models

// StripeEvent is the processed-event log. One row per delivered event
// id; the unique index is the at-most-once guard under at-least-once
// webhook delivery.
type StripeEvent struct {
	BaseModel
	StripeEventID string `json:"stripe_event_id" gorm:"size:255;uniqueIndex;not null"`
	EventType     string `json:"event_type" gorm:"size:100;index"`
	Data          JSONB  `json:"data" gorm:"type:jsonb"`
	Processed     bool   `json:"processed" gorm:"default:false"`
}
