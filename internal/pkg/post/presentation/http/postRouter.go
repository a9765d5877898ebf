package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/presentation/controller"
)

// RegisterRoutes registers the posts endpoints under the given router group.
// Reads of a single post or a user's timeline are public; everything that
// writes requires the authenticated identity.
func RegisterRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc, pool *pgxpool.Pool, uploader mediaport.Uploader) {
	createCtl := controller.NewCreatePostController(pool, uploader)
	createMobileCtl := controller.NewCreateMobilePostController(pool)
	getCtl := controller.NewGetPostController(pool)
	deleteCtl := controller.NewDeletePostController(pool)
	likeCtl := controller.NewLikePostController(pool)
	replyCtl := controller.NewReplyPostController(pool)
	deleteReplyCtl := controller.NewDeleteReplyController(pool)
	feedCtl := controller.NewFeedController(pool)
	userPostsCtl := controller.NewUserPostsController(pool)

	posts := g.Group("/posts")
	posts.POST("", authMW, createCtl.Handle())
	posts.POST("/mobile", authMW, createMobileCtl.Handle())
	posts.GET("/feed", authMW, feedCtl.Handle())
	posts.GET("/user/:username", userPostsCtl.Handle())
	posts.GET("/:postId", getCtl.Handle())
	posts.DELETE("/:postId", authMW, deleteCtl.Handle())
	posts.DELETE("/:postId/reply/:replyId", authMW, deleteReplyCtl.Handle())
	posts.PUT("/like/:postId", authMW, likeCtl.Handle())
	posts.PUT("/reply/:postId", authMW, replyCtl.Handle())
}
