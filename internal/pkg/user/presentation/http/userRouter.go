package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers account endpoints under the given router group.
// Profile reads are public; the follow toggle requires the authenticated
// identity.
func RegisterRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc, pool *pgxpool.Pool, jwtSecret string) {
	signupCtl := controller.NewSignupController(pool, jwtSecret)
	loginCtl := controller.NewLoginController(pool, jwtSecret)
	logoutCtl := controller.NewLogoutController()
	followCtl := controller.NewFollowController(pool)
	profileCtl := controller.NewProfileController(pool)

	users := g.Group("/users")
	users.POST("/signup", signupCtl.Handle())
	users.POST("/login", loginCtl.Handle())
	users.POST("/logout", logoutCtl.Handle())
	users.POST("/follow/:id", authMW, followCtl.Handle())
	users.GET("/profile/:query", profileCtl.Handle())
}
