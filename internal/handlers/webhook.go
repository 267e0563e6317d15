// internal/handlers/webhook.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hackeed/hackeed-backend/internal/services"
	"github.com/hackeed/hackeed-backend/internal/utils"
)

type WebhookHandler struct {
	webhooks *services.WebhookService
}

func NewWebhookHandler(webhooks *services.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// HandleStripeWebhook consumes one delivery from the payment
// processor. The raw body is handed to signature verification
// untouched; any rewriting would break the HMAC.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.ErrorJSON(c, http.StatusBadRequest, "Webhook Error: unreadable body")
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	err = h.webhooks.HandleEvent(c.Request.Context(), payload, sigHeader)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			utils.ErrorJSON(c, http.StatusBadRequest, fmt.Sprintf("Webhook Error: %v", err))
			return
		}
		logrus.WithError(err).Error("Webhook: event processing failed")
		utils.ErrorJSON(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
