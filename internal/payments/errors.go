// internal/payments/errors.go
package payments

import (
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v74"
)

// Category classifies a processor failure for user-facing reporting.
// Processor-internal error text never reaches the caller; handlers map
// the category to a localized message.
type Category string

const (
	// CategoryUnreachable: transport-level failure, the request may not
	// have reached the processor at all.
	CategoryUnreachable Category = "unreachable"
	// CategoryRejected: the processor refused the request payload.
	CategoryRejected Category = "rejected"
	// CategoryMisconfigured: credential problem on our side.
	CategoryMisconfigured Category = "misconfigured"
	// CategoryUnknown: anything else.
	CategoryUnknown Category = "unknown"
)

// Categorize maps a session-creation error onto the taxonomy. Errors
// that are not a *stripe.Error never got a processor response and are
// treated as connectivity failures.
func Categorize(err error) Category {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return CategoryUnreachable
	}

	switch {
	case stripeErr.HTTPStatusCode == http.StatusUnauthorized:
		return CategoryMisconfigured
	case stripeErr.Type == stripe.ErrorTypeInvalidRequest:
		return CategoryRejected
	default:
		return CategoryUnknown
	}
}
