// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Checkout validation
	KeyCheckoutEmptyCart          = "checkout.empty_cart"
	KeyCheckoutProductUnavailable = "checkout.product_unavailable"
	KeyCheckoutQuantityInvalid    = "checkout.quantity_invalid"
	KeyCheckoutQuantityMax        = "checkout.quantity_max"
	KeyCheckoutStockExceeded      = "checkout.stock_exceeded"
	KeyCheckoutVariantNotFound    = "checkout.variant_not_found"

	// Payment processor
	KeyPaymentUnreachable   = "payment.unreachable"
	KeyPaymentRejected      = "payment.rejected"
	KeyPaymentMisconfigured = "payment.misconfigured"

	// Verification
	KeyVerifyMissingSession = "verify.missing_session"

	// Generic
	KeyErrorGeneric = "errors.generic"
	KeyErrorStorage = "errors.storage"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Debug
	KeyDebugAccessDenied = "debug.access_denied"
)
