package controllers

import (
	"errors"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeError maps the service error taxonomy onto HTTP responses. All
// controllers go through here so the envelope stays uniform.
func writeError(c *gin.Context, err error) {
	var invalid *apperr.InvalidInput
	if errors.As(err, &invalid) {
		resp.FieldError(c, invalid.Field, invalid.Message)
		return
	}
	var badOrder *apperr.InvalidOrder
	if errors.As(err, &badOrder) {
		resp.BadRequest(c, badOrder.Reason)
		return
	}
	switch {
	case errors.Is(err, apperr.ErrCrossFoodtruckCart):
		resp.Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrItemNotFound),
		errors.Is(err, apperr.ErrItemNotInCart),
		errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, apperr.ErrNoResults):
		resp.NotFound(c, "no results")
	case errors.Is(err, apperr.ErrUnauthorizedWorker),
		errors.Is(err, apperr.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	default:
		resp.ServerError(c, err)
	}
}
