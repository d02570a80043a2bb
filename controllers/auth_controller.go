package controllers

import (
	"net/http"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user})
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	user, err := h.Svc.Me(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.UpdateMeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.UpdateMe(uid, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// GET /auth/me/avatar
func (h *AuthController) Avatar(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	user, err := h.Svc.Me(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	if user.AvatarSize == 0 {
		resp.NotFound(c, "no avatar")
		return
	}
	c.Data(http.StatusOK, user.AvatarType, user.Avatar)
}
