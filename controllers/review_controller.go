// controllers/review_controller.go
package controllers

import (
	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

// POST /foodtrucks/:id/reviews
func (h *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Create(uid, truckIDParam(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"review": review})
}

// GET /foodtrucks/:id/reviews
func (h *ReviewController) List(c *gin.Context) {
	reviews, avg, err := h.Svc.ListForTruck(truckIDParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "averageRating": avg})
}
