package controllers

import (
	"net/http"
	"strconv"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type FoodItemController struct{ Svc *services.FoodItemService }

func NewFoodItemController(svc *services.FoodItemService) *FoodItemController {
	return &FoodItemController{Svc: svc}
}

// GET /foodtrucks/:id/items
func (h *FoodItemController) List(c *gin.Context) {
	items, err := h.Svc.ListByTruck(truckIDParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /foodtrucks/:id/items/:name
func (h *FoodItemController) Detail(c *gin.Context) {
	item, err := h.Svc.Get(truckIDParam(c), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// GET /foodtrucks/:id/items/:name/image
func (h *FoodItemController) Image(c *gin.Context) {
	item, err := h.Svc.Get(truckIDParam(c), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, item.ImageType, item.Image)
}

// POST /foodtrucks/:id/items, staff only.
func (h *FoodItemController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.FoodItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Create(uid, truckIDParam(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item})
}

// PATCH /foodtrucks/:id/items/:name, staff only.
func (h *FoodItemController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.FoodItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Update(uid, truckIDParam(c), c.Param("name"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// POST /foodtrucks/:id/items/:name/rename, staff only.
func (h *FoodItemController) Rename(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		NewName string `json:"newName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Rename(uid, truckIDParam(c), c.Param("name"), req.NewName)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}

// DELETE /foodtrucks/:id/items/:name, staff only.
func (h *FoodItemController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Delete(uid, truckIDParam(c), c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}

// POST /foodtrucks/:id/items/:name/media, staff only.
func (h *FoodItemController) AddMedia(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.MediaIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.AddMedia(uid, truckIDParam(c), c.Param("name"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"media": m})
}

// DELETE /foodtrucks/:id/items/:name/media/:mediaId, staff only.
func (h *FoodItemController) RemoveMedia(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	mediaID, _ := strconv.Atoi(c.Param("mediaId"))
	if err := h.Svc.RemoveMedia(uid, truckIDParam(c), c.Param("name"), uint(mediaID)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
