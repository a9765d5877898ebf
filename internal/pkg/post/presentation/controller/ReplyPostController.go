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

// ReplyPostController appends a reply to a post.
type ReplyPostController struct {
	uc *usecase.ReplyPostUseCase
}

func NewReplyPostController(pool *pgxpool.Pool) *ReplyPostController {
	repo := repoAdapter.NewPgPostRepository(pool)
	return &ReplyPostController{uc: usecase.NewReplyPostUseCase(repo)}
}

type replyRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *ReplyPostController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req replyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		reply, err := h.uc.Execute(ctx, usecase.ReplyPostInput{
			PostID:   c.Param("postId"),
			AuthorID: userID,
			Text:     req.Text,
		})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toReplyResponse(*reply))
	}
}
