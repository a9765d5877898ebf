package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/adapter"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/event"
)

// SendMessageController handles the synchronous send endpoint (one controller
// per endpoint). The durable write happens first; the realtime push to the
// recipient is best-effort and never affects the response.
type SendMessageController struct {
	uc  *usecase.SendMessageUseCase
	hub *realtime.Hub
	log zerolog.Logger
}

func NewSendMessageController(pool *pgxpool.Pool, uploader mediaport.Uploader, cache cacheport.Cache, hub *realtime.Hub, logger zerolog.Logger) *SendMessageController {
	repo := repoAdapter.NewPgMessagingRepository(pool)
	return &SendMessageController{
		uc:  usecase.NewSendMessageUseCase(repo, uploader, cache),
		hub: hub,
		log: logger,
	}
}

// sendMessageRequest is the DTO for the HTTP request body. Field names follow
// the client protocol.
type sendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Message     string `json:"message"`
	Img         string `json:"img"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		senderID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		msg, err := h.uc.Execute(ctx, usecase.SendMessageInput{
			SenderID:    senderID,
			RecipientID: req.RecipientID,
			Text:        req.Message,
			ImageData:   req.Img,
		})
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, usecase.ErrPersistence) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// At-most-once realtime notification; the pull-based history fetch is
		// the backstop for offline or failed deliveries.
		if delivered := h.hub.DeliverToUser(req.RecipientID, event.NewMessageDelivery(*msg)); !delivered {
			h.log.Debug().Str("recipient_id", req.RecipientID).Msg("recipient offline, skipping push")
		}

		c.JSON(http.StatusCreated, event.ToPayload(*msg))
	}
}

// statusForError maps use case failures onto HTTP statuses shared by the read
// endpoints.
func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrPersistence):
		return http.StatusInternalServerError
	case errors.Is(err, messaging.ErrConversationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
