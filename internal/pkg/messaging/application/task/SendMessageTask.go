package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	queueport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/queue/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/adapter"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/event"
)

// SendMessageTaskType is the queue task name for the asynchronous send path.
const SendMessageTaskType = "messaging:send_message"

// SendMessagePayload is the JSON payload transported via the queue. Kept
// separate from domain types to avoid coupling wire tags to the domain.
type SendMessagePayload struct {
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Text        string `json:"text"`
	ImageData   string `json:"imageData"`
}

// RegisterSendMessageTask binds the handler to the worker server. The handler
// runs the same send use case as the synchronous endpoint and then performs
// the identical best-effort realtime push.
func RegisterSendMessageTask(srv queueport.Server, pool *pgxpool.Pool, uploader mediaport.Uploader, cache cacheport.Cache, hub *realtime.Hub, logger zerolog.Logger) {
	srv.Register(SendMessageTaskType, func(ctx context.Context, t queueport.Task) error {
		var p SendMessagePayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// Malformed payload will never succeed; let the adapter retire it.
			return err
		}

		repo := repoAdapter.NewPgMessagingRepository(pool)
		uc := usecase.NewSendMessageUseCase(repo, uploader, cache)

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		msg, err := uc.Execute(ctx, usecase.SendMessageInput{
			SenderID:    p.SenderID,
			RecipientID: p.RecipientID,
			Text:        p.Text,
			ImageData:   p.ImageData,
		})
		if err != nil {
			return err
		}

		if delivered := hub.DeliverToUser(p.RecipientID, event.NewMessageDelivery(*msg)); !delivered {
			logger.Debug().Str("recipient_id", p.RecipientID).Msg("recipient offline, skipping push")
		}
		return nil
	})
}
