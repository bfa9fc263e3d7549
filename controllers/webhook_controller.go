package controllers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/payments"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
)

type WebhookController struct {
	Orders        *services.OrderService
	WebhookSecret string
}

func NewWebhookController(os *services.OrderService, secret string) *WebhookController {
	return &WebhookController{Orders: os, WebhookSecret: secret}
}

// POST /webhooks/stripe
//
// Finalizes the pending order once the hosted checkout completes. The order
// id rides in session metadata, so no lookup by session id is needed here.
func (wc *WebhookController) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read payload"})
		return
	}

	sess, err := payments.ParseCompletedSession(payload, c.GetHeader("Stripe-Signature"), wc.WebhookSecret)
	if err != nil {
		log.Printf("stripe webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}
	if sess == nil {
		// some other event type; acknowledge so the provider stops retrying
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	orderID, err := strconv.ParseUint(sess.Metadata["order_id"], 10, 32)
	if err != nil || orderID == 0 {
		log.Printf("stripe webhook session %s missing order_id metadata", sess.ID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_id"})
		return
	}

	if err := wc.Orders.FinalizePayment(uint(orderID), sess.CustomerDetails.Name, sess.CustomerDetails.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if courseID, err := strconv.ParseUint(sess.Metadata["course_id"], 10, 32); err == nil {
		wc.Orders.BroadcastUpdate(uint(courseID), uint(orderID))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
