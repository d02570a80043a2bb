package controllers

import (
	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct{ Svc *services.SearchService }

func NewSearchController(svc *services.SearchService) *SearchController {
	return &SearchController{Svc: svc}
}

// GET /search?q=
func (h *SearchController) Search(c *gin.Context) {
	results, err := h.Svc.Search(c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": results})
}
