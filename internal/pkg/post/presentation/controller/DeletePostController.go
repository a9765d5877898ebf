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

// DeletePostController removes a post on behalf of its author.
type DeletePostController struct {
	uc *usecase.DeletePostUseCase
}

func NewDeletePostController(pool *pgxpool.Pool) *DeletePostController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &DeletePostController{uc: usecase.NewDeletePostUseCase(repo)}
}

func (h *DeletePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := h.uc.Execute(ctx, usecase.DeletePostInput{
			PostID:      c.Param("postId"),
			RequesterID: userID,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
	}
}
