// internal/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hackeed/hackeed-backend/internal/services"
	"github.com/hackeed/hackeed-backend/internal/utils"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
}

func NewCheckoutHandler(checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreateSession validates the cart and returns the payment session
// reference as {"id": ..., "url": ...}. All failures come back as
// {"error": message} with the status the error category dictates.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		logrus.WithField("details", utils.GetValidationErrors(err)).Warn("Checkout: invalid request body")
		utils.BadRequestResponse(c, "")
		return
	}

	ref, err := h.checkout.CreateSession(c.Request.Context(), &req)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		var cerr *services.CheckoutError
		if errors.As(err, &cerr) {
			utils.ErrorJSON(c, cerr.Status, cerr.Message(lang))
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, ref)
}
