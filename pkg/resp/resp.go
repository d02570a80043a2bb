package resp

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Envelope shape consumed by the frontend: {"success": bool, "error"?, "field"?, ...data}.

func OK(c *gin.Context, data gin.H) {
	send(c, http.StatusOK, data)
}

func Created(c *gin.Context, data gin.H) {
	send(c, http.StatusCreated, data)
}

func send(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// FieldError carries the offending field code so the client can highlight
// the matching form element.
func FieldError(c *gin.Context, field, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg, "field": field})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": msg})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"success": false, "error": msg})
}

// ServerError hides infrastructure detail unless running in development.
func ServerError(c *gin.Context, err error) {
	msg := "internal error"
	if os.Getenv("APP_ENV") == "development" {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
}
