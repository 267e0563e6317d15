// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTranslationsAndLookup(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	assert.Equal(t,
		"No products in your cart. Add products before continuing.",
		T("en", KeyCheckoutEmptyCart))

	assert.Equal(t,
		"No hay productos en tu carrito. Añade productos antes de continuar.",
		T("es", KeyCheckoutEmptyCart))
}

func TestTranslationFormatting(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	msg := T("en", KeyCheckoutStockExceeded, "Plain Tee", int64(2), int64(5))
	assert.Equal(t, `Not enough stock for "Plain Tee". Available stock: 2, requested: 5.`, msg)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	assert.Equal(t,
		T("en", KeyPaymentUnreachable),
		T("fr", KeyPaymentUnreachable))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	assert.Equal(t, "nope.not_a_key", T("en", "nope.not_a_key"))
}

func TestEveryKeyHasBothLocales(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	keys := []string{
		KeyCheckoutEmptyCart, KeyCheckoutProductUnavailable,
		KeyCheckoutQuantityInvalid, KeyCheckoutQuantityMax,
		KeyCheckoutStockExceeded, KeyCheckoutVariantNotFound,
		KeyPaymentUnreachable, KeyPaymentRejected, KeyPaymentMisconfigured,
		KeyVerifyMissingSession,
		KeyErrorGeneric, KeyErrorStorage,
		KeyValidationInvalid, KeyDebugAccessDenied,
	}

	for _, key := range keys {
		for _, lang := range []string{"en", "es"} {
			assert.NotEqual(t, key, T(lang, key), "missing %s translation for %s", lang, key)
		}
	}
}
