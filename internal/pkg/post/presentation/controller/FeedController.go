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

// FeedController returns posts from the users the caller follows.
type FeedController struct {
	uc *usecase.FeedUseCase
}

func NewFeedController(pool *pgxpool.Pool) *FeedController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &FeedController{uc: usecase.NewFeedUseCase(repo)}
}

func (h *FeedController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		posts, err := h.uc.Execute(ctx, userID)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toPostResponses(posts))
	}
}
