package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/adapter"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/event"
)

// GetMessageController returns the message history between the caller and
// another user, oldest first.
type GetMessageController struct {
	uc *usecase.GetMessageUseCase
}

func NewGetMessageController(pool *pgxpool.Pool) *GetMessageController {
	repo := repoAdapter.NewPgMessagingRepository(pool)
	return &GetMessageController{uc: usecase.NewGetMessageUseCase(repo)}
}

func (h *GetMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		otherUserID := c.Param("otherUserId")
		if otherUserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "otherUserId is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msgs, err := h.uc.Execute(ctx, usecase.GetMessageInput{UserID: userID, OtherUserID: otherUserID})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]event.MessagePayload, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, event.ToPayload(m))
		}
		c.JSON(http.StatusOK, out)
	}
}
