// internal/payments/stripe.go
package payments

import (
	"encoding/json"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/hackeed/hackeed-backend/internal/config"
)

// EventTypeCheckoutCompleted is the only event type that mutates
// inventory; every other type is acknowledged and ignored.
const EventTypeCheckoutCompleted = "checkout.session.completed"

// LineItem is one priced cart line submitted to the processor. The
// metadata travels to the webhook through the session's product data
// and is the only channel by which the webhook learns which inventory
// to decrement.
type LineItem struct {
	Name            string
	UnitAmountCents int64
	Quantity        int64
	Metadata        map[string]string
}

type SessionRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaidItem is a line item recovered from a completed session, with the
// metadata attached at session-creation time.
type PaidItem struct {
	ProductName string
	Quantity    int64
	Metadata    map[string]string
}

type SessionInfo struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"-"`
}

// Event is a verified webhook notification.
type Event struct {
	ID   string
	Type string
	Data json.RawMessage
}

type StripeClient struct {
	webhookSecret string
	currency      string
	successURL    string
	cancelURL     string
}

func NewStripeClient(cfg *config.Config) *StripeClient {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &StripeClient{
		webhookSecret: cfg.Payment.StripeWebhookSecret,
		currency:      cfg.Payment.Currency,
		successURL:    cfg.Frontend.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:     cfg.Frontend.BaseURL + "/cart",
	}
}

// CreateSession submits all line items as one checkout session. The
// call is atomic from this system's perspective: on error no session
// exists.
func (c *StripeClient) CreateSession(customerEmail string, items []LineItem) (*SessionRef, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(c.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(item.Name),
					Metadata: item.Metadata,
				},
				UnitAmount: stripe.Int64(item.UnitAmountCents),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		LineItems:                lineItems,
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:               stripe.String(c.successURL),
		CancelURL:                stripe.String(c.cancelURL),
		CustomerEmail:            stripe.String(customerEmail),
		BillingAddressCollection: stripe.String("required"),
		Locale:                   stripe.String("en"),
	}

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &SessionRef{ID: s.ID, URL: s.URL}, nil
}

// ListPaidItems expands the session's line items to recover the product
// metadata attached at creation time.
func (c *StripeClient) ListPaidItems(sessionID string) ([]PaidItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.AddExpand("data.price.product")

	var items []PaidItem
	iter := session.ListLineItems(params)
	for iter.Next() {
		li := iter.LineItem()

		item := PaidItem{Quantity: li.Quantity}
		if li.Price != nil && li.Price.Product != nil {
			item.ProductName = li.Price.Product.Name
			item.Metadata = li.Price.Product.Metadata
		}
		items = append(items, item)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *StripeClient) GetSession(sessionID string) (*SessionInfo, error) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("payment_intent")

	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, err
	}

	info := &SessionInfo{
		ID:            s.ID,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
	}
	if info.CustomerEmail == "" && s.CustomerDetails != nil {
		info.CustomerEmail = s.CustomerDetails.Email
	}
	return info, nil
}

// VerifyWebhook checks the processor signature against the shared
// secret. This is the only authentication boundary in the system.
func (c *StripeClient) VerifyWebhook(payload []byte, sigHeader string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
	if err != nil {
		return nil, err
	}

	verified := &Event{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil {
		verified.Data = event.Data.Raw
	}
	return verified, nil
}
