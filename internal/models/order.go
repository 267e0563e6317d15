// internal/models/order.go
package models

type Order struct {
	BaseModel
	StripeSessionID  string `json:"stripe_session_id" gorm:"size:255;uniqueIndex;not null"`
	CustomerEmail    string `json:"customer_email" gorm:"size:255"`
	AmountTotalCents int64  `json:"amount_total_cents"`
	Currency         string `json:"currency" gorm:"size:10"`
	PaymentStatus    string `json:"payment_status" gorm:"size:50;index"`
	Items            JSONB  `json:"items" gorm:"type:jsonb"`
}
