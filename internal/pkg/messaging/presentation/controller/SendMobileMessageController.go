package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	queueport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/queue/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/task"
)

// SendMobileMessageController accepts a message from a mobile client and hands
// it to the background queue instead of writing inline. Mobile networks drop
// mid-request often enough that the retrying worker path is worth the 202.
type SendMobileMessageController struct {
	q queueport.Client
}

func NewSendMobileMessageController(client queueport.Client) *SendMobileMessageController {
	return &SendMobileMessageController{q: client}
}

func (h *SendMobileMessageController) Handle() gin.HandlerFunc {
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

		// A permanently-invalid send must be rejected here; once the 202 is
		// out, a failing task retries and then vanishes without the client
		// ever hearing about it.
		if req.RecipientID == senderID {
			c.JSON(http.StatusBadRequest, gin.H{"error": messaging.ErrSelfConversation.Error()})
			return
		}
		if strings.TrimSpace(req.Message) == "" && req.Img == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": messaging.ErrEmptyMessage.Error()})
			return
		}

		payload := task.SendMessagePayload{
			SenderID:    senderID,
			RecipientID: req.RecipientID,
			Text:        req.Message,
			ImageData:   req.Img,
		}
		b, err := json.Marshal(payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode task payload"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		opts := queueport.EnqueueOption{Queue: "messaging", MaxRetry: 20}
		id, err := h.q.Enqueue(ctx, queueport.Task{Type: task.SendMessageTaskType, Payload: b}, opts)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to enqueue message"})
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"status":      "queued",
			"taskId":      id,
			"recipientId": req.RecipientID,
		})
	}
}
