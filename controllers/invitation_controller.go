package controllers

import (
	"errors"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/utils"

	"github.com/gin-gonic/gin"
)

type InvitationController struct{ Svc *services.InvitationService }

func NewInvitationController(svc *services.InvitationService) *InvitationController {
	return &InvitationController{Svc: svc}
}

// POST /foodtrucks/:id/invitations, owner only.
func (h *InvitationController) Invite(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	inv, err := h.Svc.Invite(uid, truckIDParam(c), req.Email)
	if err != nil {
		// invitation persisted but the mail bounced: partial success
		var mailErr *apperr.MailSend
		if errors.As(err, &mailErr) && inv != nil {
			resp.Created(c, gin.H{"invitation": inv, "mailSent": false})
			return
		}
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"invitation": inv, "mailSent": true})
}

// GET /profile/invitations lists pending offers for the logged-in user.
func (h *InvitationController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	invs, err := h.Svc.ListForUser(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": invs})
}

// GET /invitations/accept?token= is reached from the emailed link.
func (h *InvitationController) Accept(c *gin.Context) {
	inv, err := h.Svc.Accept(c.Query("token"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"invitation": inv})
}

// GET /invitations/decline?token=
func (h *InvitationController) Decline(c *gin.Context) {
	inv, err := h.Svc.Decline(c.Query("token"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"invitation": inv})
}
