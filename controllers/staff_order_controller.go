// controllers/staff_order_controller.go
package controllers

import (
	"strconv"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

// StaffOrderController handles the foodtruck side of the order lifecycle.
type StaffOrderController struct{ Svc *services.OrderService }

func NewStaffOrderController(svc *services.OrderService) *StaffOrderController {
	return &StaffOrderController{Svc: svc}
}

// GET /foodtruck/orders?foodtruckId=&open=
func (h *StaffOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	truckID, _ := strconv.Atoi(c.Query("foodtruckId"))
	openOnly := c.Query("open") == "true"

	orders, err := h.Svc.ListForTruck(uid, uint(truckID), openOnly)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// POST /foodtruck/orders/ready
func (h *StaffOrderController) Ready(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		OrderID uint `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetReady(uid, body.OrderID); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}

// POST /foodtruck/orders/received
func (h *StaffOrderController) Received(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		OrderID uint `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Confirm(uid, body.OrderID); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
