package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/resp"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/services"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// cartToken reads the client's opaque cart token, minting one on first use.
// The token is always echoed back so the client can persist it.
func cartToken(c *gin.Context) string {
	token := c.GetHeader("X-Cart-Token")
	if token == "" {
		token = uuid.NewString()
	}
	c.Header("X-Cart-Token", token)
	return token
}

func courseParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("courseId"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid course id")
		return 0, false
	}
	return uint(id), true
}

// GET /cart/:courseId
func (cc *CartController) Get(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)

	cart, subtotal, err := cc.Cart.Get(token, courseID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cart.Items, "subtotal": subtotal})
}

// POST /cart/:courseId/items
func (cc *CartController) Add(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Cart.Add(token, courseID, &req); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	cc.Get(c)
}

type updateQtyReq struct {
	Delta int `json:"delta" binding:"required"`
}

// PATCH /cart/:courseId/items/:itemId
func (cc *CartController) UpdateQty(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Cart.UpdateQty(token, courseID, uint(itemID), req.Delta); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	cc.Get(c)
}

type setNoteReq struct {
	Note string `json:"note"`
}

// PUT /cart/:courseId/items/:itemId/note
func (cc *CartController) SetNote(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	var req setNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Cart.SetNote(token, courseID, uint(itemID), req.Note); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	cc.Get(c)
}

// DELETE /cart/:courseId/items/:itemId
func (cc *CartController) Remove(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	if err := cc.Cart.Remove(token, courseID, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	cc.Get(c)
}

// DELETE /cart/:courseId
func (cc *CartController) Clear(c *gin.Context) {
	courseID, ok := courseParam(c)
	if !ok {
		return
	}
	token := cartToken(c)

	if err := cc.Cart.Clear(token, courseID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": []any{}, "subtotal": 0})
}
