package controllers

import (
	"strconv"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc     *services.OrderService
	AddrSvc *services.AddressService
}

func NewOrderController(svc *services.OrderService, addrSvc *services.AddressService) *OrderController {
	return &OrderController{Svc: svc, AddrSvc: addrSvc}
}

type placeOrderReq struct {
	Address services.AddressIn `json:"address" binding:"required"`
	Payment services.CardIn    `json:"payment" binding:"required"`
}

// POST /order/post places the order for the user's current cart.
// The payment proof is validated and discarded; the address is resolved
// (deduplicated) before the order pipeline runs.
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	services.FormatCard(&req.Payment)
	if err := services.ValidateCard(&req.Payment); err != nil {
		writeError(c, err)
		return
	}

	addr, err := h.AddrSvc.Resolve(&req.Address)
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.Svc.CreateFromCart(uid, addr)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"order": out})
}

// GET /profile/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	items, err := h.Svc.ListForUser(uid, 50)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id, order owner only.
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))
	o, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o})
}
