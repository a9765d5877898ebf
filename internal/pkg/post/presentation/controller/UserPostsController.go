package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/adapter"
)

// UserPostsController returns a user's posts by username, newest first.
type UserPostsController struct {
	uc *usecase.UserPostsUseCase
}

func NewUserPostsController(pool *pgxpool.Pool) *UserPostsController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &UserPostsController{uc: usecase.NewUserPostsUseCase(repo)}
}

func (h *UserPostsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		posts, err := h.uc.Execute(ctx, c.Param("username"))
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toPostResponses(posts))
	}
}
