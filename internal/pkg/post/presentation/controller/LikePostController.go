package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/adapter"
)

// LikePostController toggles the caller's like on a post.
type LikePostController struct {
	uc *usecase.LikePostUseCase
}

func NewLikePostController(pool *pgxpool.Pool) *LikePostController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &LikePostController{uc: usecase.NewLikePostUseCase(repo)}
}

func (h *LikePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		liked, err := h.uc.Execute(ctx, usecase.LikePostInput{
			PostID: c.Param("postId"),
			UserID: userID,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		msg := "post unliked"
		if liked {
			msg = "post liked"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "liked": liked})
	}
}
