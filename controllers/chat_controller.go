package controllers

import (
	"strconv"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// POST /chats/open
func (h *ChatController) Open(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		FoodtruckID uint `json:"foodtruckId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	room, err := h.Svc.OpenRoom(uid, req.FoodtruckID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"room": room})
}

// GET /chats lists the user's conversations, latest message first.
func (h *ChatController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	rooms, err := h.Svc.RoomsForUser(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rooms})
}

// GET /foodtruck/chats?foodtruckId= is the staff view, same ordering.
func (h *ChatController) ListForTruck(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	truckID, _ := strconv.Atoi(c.Query("foodtruckId"))
	rooms, err := h.Svc.RoomsForTruck(uid, uint(truckID))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rooms})
}

func roomIDParam(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// GET /chats/:id/messages
func (h *ChatController) Messages(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	msgs, err := h.Svc.Messages(uid, roomIDParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}

// POST /chats/:id/messages
func (h *ChatController) Send(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	msg, err := h.Svc.Send(uid, roomIDParam(c), req.Body)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": msg})
}
