// internal/services/errors.go
package services

import (
	"net/http"

	"github.com/hackeed/hackeed-backend/internal/i18n"
)

// CheckoutErrorCode identifies a category in the checkout error
// taxonomy. Each code maps to one status and one localized message.
type CheckoutErrorCode string

const (
	ErrCodeEmptyCart            CheckoutErrorCode = "empty_cart"
	ErrCodeProductUnavailable   CheckoutErrorCode = "product_unavailable"
	ErrCodeQuantityInvalid      CheckoutErrorCode = "quantity_invalid"
	ErrCodeQuantityExceedsStock CheckoutErrorCode = "quantity_exceeds_stock"
	ErrCodeVariantNotFound      CheckoutErrorCode = "variant_not_found"
	ErrCodePaymentUnreachable   CheckoutErrorCode = "payment_unreachable"
	ErrCodePaymentRejected      CheckoutErrorCode = "payment_rejected"
	ErrCodePaymentMisconfigured CheckoutErrorCode = "payment_misconfigured"
	ErrCodeGeneric              CheckoutErrorCode = "generic"
)

// CheckoutError carries the taxonomy code, the HTTP status to surface,
// and the message key plus args for localization at the handler.
// Processor-internal error text is never carried here.
type CheckoutError struct {
	Code       CheckoutErrorCode
	Status     int
	MessageKey string
	Args       []interface{}
}

func (e *CheckoutError) Error() string {
	return string(e.Code)
}

// Message renders the localized user-facing text.
func (e *CheckoutError) Message(lang string) string {
	return i18n.T(lang, e.MessageKey, e.Args...)
}

func newCheckoutError(code CheckoutErrorCode, status int, key string, args ...interface{}) *CheckoutError {
	return &CheckoutError{Code: code, Status: status, MessageKey: key, Args: args}
}

func errEmptyCart() *CheckoutError {
	return newCheckoutError(ErrCodeEmptyCart, http.StatusBadRequest, i18n.KeyCheckoutEmptyCart)
}

func errProductUnavailable() *CheckoutError {
	return newCheckoutError(ErrCodeProductUnavailable, http.StatusBadRequest, i18n.KeyCheckoutProductUnavailable)
}

func errQuantityInvalid(productName string) *CheckoutError {
	return newCheckoutError(ErrCodeQuantityInvalid, http.StatusBadRequest, i18n.KeyCheckoutQuantityInvalid, productName)
}

func errQuantityMax(productName string, max int64) *CheckoutError {
	return newCheckoutError(ErrCodeQuantityInvalid, http.StatusBadRequest, i18n.KeyCheckoutQuantityMax, productName, max)
}

func errStockExceeded(productName string, available, requested int64) *CheckoutError {
	return newCheckoutError(ErrCodeQuantityExceedsStock, http.StatusBadRequest, i18n.KeyCheckoutStockExceeded, productName, available, requested)
}

func errVariantNotFound(productName string) *CheckoutError {
	return newCheckoutError(ErrCodeVariantNotFound, http.StatusBadRequest, i18n.KeyCheckoutVariantNotFound, productName)
}

func errPaymentUnreachable() *CheckoutError {
	return newCheckoutError(ErrCodePaymentUnreachable, http.StatusServiceUnavailable, i18n.KeyPaymentUnreachable)
}

func errPaymentRejected() *CheckoutError {
	return newCheckoutError(ErrCodePaymentRejected, http.StatusBadRequest, i18n.KeyPaymentRejected)
}

func errPaymentMisconfigured() *CheckoutError {
	return newCheckoutError(ErrCodePaymentMisconfigured, http.StatusInternalServerError, i18n.KeyPaymentMisconfigured)
}

func errGeneric() *CheckoutError {
	return newCheckoutError(ErrCodeGeneric, http.StatusInternalServerError, i18n.KeyErrorGeneric)
}
