package controllers

import (
	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	out, err := h.Svc.Get(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": out.Cart, "totalPrice": out.TotalPrice, "itemCount": out.ItemCount})
}

// POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{})
}

// POST /cart/update
func (h *CartController) UpdateAmount(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		FoodName string `json:"foodName" binding:"required"`
		Amount   int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateAmount(uid, body.FoodName, body.Amount); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}

// POST /cart/remove
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		FoodName string `json:"foodName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Remove(uid, body.FoodName); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Clear(uid); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
