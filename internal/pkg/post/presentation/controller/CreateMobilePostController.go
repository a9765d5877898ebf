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

// CreateMobilePostController publishes a post whose image, if any, is already
// hosted: mobile clients upload directly to the provider and submit the URL.
type CreateMobilePostController struct {
	uc *usecase.CreatePostUseCase
}

func NewCreateMobilePostController(pool *pgxpool.Pool) *CreateMobilePostController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &CreateMobilePostController{uc: usecase.NewCreatePostUseCase(repo, nil)}
}

func (h *CreateMobilePostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		p, err := h.uc.Execute(ctx, usecase.CreatePostInput{
			AuthorID: authorID,
			Text:     req.Text,
			ImageURL: req.Img,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, toPostResponse(*p))
	}
}
