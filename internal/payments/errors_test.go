// internal/payments/errors_test.go
package payments

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v74"
)

func TestCategorizeTransportError(t *testing.T) {
	assert.Equal(t, CategoryUnreachable, Categorize(errors.New("dial tcp: i/o timeout")))
}

func TestCategorizeWrappedTransportError(t *testing.T) {
	err := fmt.Errorf("creating session: %w", errors.New("connection refused"))
	assert.Equal(t, CategoryUnreachable, Categorize(err))
}

func TestCategorizeAuthFailure(t *testing.T) {
	err := &stripe.Error{HTTPStatusCode: http.StatusUnauthorized, Type: stripe.ErrorTypeAPI}
	assert.Equal(t, CategoryMisconfigured, Categorize(err))
}

func TestCategorizeInvalidRequest(t *testing.T) {
	err := &stripe.Error{HTTPStatusCode: http.StatusBadRequest, Type: stripe.ErrorTypeInvalidRequest}
	assert.Equal(t, CategoryRejected, Categorize(err))
}

func TestCategorizeOtherProcessorError(t *testing.T) {
	err := &stripe.Error{HTTPStatusCode: http.StatusInternalServerError, Type: stripe.ErrorTypeAPI}
	assert.Equal(t, CategoryUnknown, Categorize(err))
}

func TestCategorizeWrappedProcessorError(t *testing.T) {
	inner := &stripe.Error{HTTPStatusCode: http.StatusUnauthorized}
	err := fmt.Errorf("creating session: %w", inner)
	assert.Equal(t, CategoryMisconfigured, Categorize(err))
}
