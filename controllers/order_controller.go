package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/entity"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/resp"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/repository"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/utils"
)

type OrderController struct {
	Orders    *services.OrderService
	Reconcile *services.ReconcileService
}

func NewOrderController(os *services.OrderService, rs *services.ReconcileService) *OrderController {
	return &OrderController{Orders: os, Reconcile: rs}
}

// GET /courses/:courseId/orders?status=&limit=   (staff)
func (oc *OrderController) ListForCourse(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	if !utils.CanAccessCourse(c, courseID) {
		resp.Forbidden(c, "no access to this course")
		return
	}

	f := repository.OrderListFilter{Status: c.Query("status")}
	if v := c.Query("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}

	orders, err := oc.Orders.ListForCourse(courseID, f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

type transitionReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /courses/:courseId/orders/:orderId/status   (staff)
func (oc *OrderController) Transition(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	if !utils.CanAccessCourse(c, courseID) {
		resp.Forbidden(c, "no access to this course")
		return
	}
	orderID, _ := strconv.Atoi(c.Param("orderId"))

	var req transitionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Transition(courseID, uint(orderID), entity.FulfillmentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus),
			errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTransitionConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}

// GET /orders/lookup?session_id=   (public thank-you flow)
//
// Blocks through the bounded retry while the webhook finalizes; an absent
// session_id fails immediately with no retry.
func (oc *OrderController) Lookup(c *gin.Context) {
	sessionID := c.Query("session_id")
	token := c.GetHeader("X-Cart-Token")

	order, err := oc.Reconcile.Lookup(c.Request.Context(), sessionID, token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingSessionID):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOrderNotReady):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{
		"id":         order.ID,
		"items":      order.Items,
		"totalPrice": order.TotalPrice,
		"holeNumber": order.HoleNumber,
		"courseId":   order.CourseID,
	})
}
