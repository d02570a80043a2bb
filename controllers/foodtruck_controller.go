package controllers

import (
	"net/http"
	"strconv"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type FoodtruckController struct{ Svc *services.FoodtruckService }

func NewFoodtruckController(svc *services.FoodtruckService) *FoodtruckController {
	return &FoodtruckController{Svc: svc}
}

func truckIDParam(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// GET /foodtrucks
func (h *FoodtruckController) List(c *gin.Context) {
	trucks, err := h.Svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": trucks})
}

// GET /foodtrucks/:id
func (h *FoodtruckController) Detail(c *gin.Context) {
	truck, err := h.Svc.Get(truckIDParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"foodtruck": truck})
}

// GET /foodtrucks/:id/banner
func (h *FoodtruckController) Banner(c *gin.Context) {
	truck, err := h.Svc.Get(truckIDParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if truck.BannerSize == 0 {
		resp.NotFound(c, "no banner")
		return
	}
	c.Data(http.StatusOK, truck.BannerType, truck.Banner)
}

// POST /foodtrucks
func (h *FoodtruckController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.FoodtruckIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	truck, err := h.Svc.Create(uid, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"foodtruck": truck})
}

// PATCH /foodtrucks/:id, owner only.
func (h *FoodtruckController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.FoodtruckIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	truck, err := h.Svc.UpdateProfile(uid, truckIDParam(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"foodtruck": truck})
}

// GET /foodtrucks/:id/workers
func (h *FoodtruckController) Workers(c *gin.Context) {
	workers, err := h.Svc.Workers(truckIDParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": workers})
}

// PUT /foodtrucks/:id/opentimes replaces the whole set, owner only.
func (h *FoodtruckController) SetOpenTimes(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		OpenTimes []services.OpenTimeIn `json:"openTimes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rows, err := h.Svc.SetOpenTimes(uid, truckIDParam(c), req.OpenTimes)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"openTimes": rows})
}

// POST /foodtrucks/:id/locations, owner only.
func (h *FoodtruckController) AddFutureLocation(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.FutureLocationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fl, err := h.Svc.AddFutureLocation(uid, truckIDParam(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"futureLocation": fl})
}

// DELETE /foodtrucks/:id/locations/:locId, owner only.
func (h *FoodtruckController) RemoveFutureLocation(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	locID, _ := strconv.Atoi(c.Param("locId"))
	if err := h.Svc.RemoveFutureLocation(uid, truckIDParam(c), uint(locID)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
