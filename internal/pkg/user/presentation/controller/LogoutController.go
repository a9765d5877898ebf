package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
)

// LogoutController clears the web session cookie. Mobile clients just discard
// their token.
type LogoutController struct{}

func NewLogoutController() *LogoutController {
	return &LogoutController{}
}

func (h *LogoutController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearWebCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
