package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/adapter"
)

// ListConversationsController returns the caller's conversations, most recent
// activity first, with the counterpart id surfaced per conversation.
type ListConversationsController struct {
	uc *usecase.ListConversationsUseCase
}

func NewListConversationsController(pool *pgxpool.Pool, cache cacheport.Cache) *ListConversationsController {
	repo := repoAdapter.NewPgMessagingRepository(pool)
	return &ListConversationsController{uc: usecase.NewListConversationsUseCase(repo, cache)}
}

type conversationResponse struct {
	ID          string              `json:"id"`
	Participant string              `json:"participant"`
	LastMessage lastMessageResponse `json:"lastMessage"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type lastMessageResponse struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		convs, err := h.uc.Execute(ctx, usecase.ListConversationsInput{UserID: userID})
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		out := make([]conversationResponse, 0, len(convs))
		for _, conv := range convs {
			out = append(out, toConversationResponse(conv, userID))
		}
		c.JSON(http.StatusOK, out)
	}
}

func toConversationResponse(conv messaging.Conversation, viewerID string) conversationResponse {
	return conversationResponse{
		ID:          conv.ID,
		Participant: conv.OtherParticipant(viewerID),
		LastMessage: lastMessageResponse{
			Text:      conv.LastMessage.Text,
			Sender:    conv.LastMessage.Sender,
			Seen:      conv.LastMessage.Seen,
			CreatedAt: conv.LastMessage.CreatedAt,
		},
		CreatedAt: conv.CreatedAt,
	}
}
