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

// GetPostController returns a single post with likes and replies.
type GetPostController struct {
	uc *usecase.GetPostUseCase
}

func NewGetPostController(pool *pgxpool.Pool) *GetPostController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &GetPostController{uc: usecase.NewGetPostUseCase(repo)}
}

func (h *GetPostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		p, err := h.uc.Execute(ctx, c.Param("postId"))
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toPostResponse(p))
	}
}
