package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/adapter"
)

// CreatePostController publishes a post; raw image data is pushed through the
// hosting provider before persistence.
type CreatePostController struct {
	uc *usecase.CreatePostUseCase
}

func NewCreatePostController(pool *pgxpool.Pool, uploader mediaport.Uploader) *CreatePostController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &CreatePostController{uc: usecase.NewCreatePostUseCase(repo, uploader)}
}

type createPostRequest struct {
	Text string `json:"text" binding:"required"`
	Img  string `json:"img"`
}

func (h *CreatePostController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		p, err := h.uc.Execute(ctx, usecase.CreatePostInput{
			AuthorID:  authorID,
			Text:      req.Text,
			ImageData: req.Img,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, toPostResponse(*p))
	}
}

// statusForError maps post use case failures onto HTTP statuses shared by the
// controllers in this package.
func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrPersistence):
		return http.StatusInternalServerError
	case errors.Is(err, post.ErrPostNotFound),
		errors.Is(err, post.ErrReplyNotFound),
		errors.Is(err, post.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, post.ErrNotAuthor):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
