package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/resp"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(co *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: co}
}

// POST /checkout/:courseId
//
// A failed submission leaves the cart exactly as it was; the customer
// corrects the problem and resubmits.
func (cc *CheckoutController) Submit(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	url, err := cc.Checkout.Submit(c.Request.Context(), token, courseID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidHoleNumber):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrHoleSelectionRequired):
			// manual fallback: client shows the 1–18 picker and resubmits
			resp.UnprocessableEntity(c, err.Error())
		case errors.Is(err, services.ErrNoHoleReturned):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"url": url})
}
