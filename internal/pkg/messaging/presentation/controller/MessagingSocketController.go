package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/usecase"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/event"
)

// MessagingSocketController owns the realtime endpoint: handshake, presence
// registration and the seen-acknowledgment protocol. Realtime-layer faults are
// never surfaced to clients; the only visible effect of a dropped request is
// the absence of the expected event.
type MessagingSocketController struct {
	hub             *realtime.Hub
	markSeenUC      *usecase.MarkSeenUseCase
	log             zerolog.Logger
	inflightTimeout time.Duration
}

func NewMessagingSocketController(repo repository.MessagingRepository, hub *realtime.Hub, logger zerolog.Logger) *MessagingSocketController {
	return &MessagingSocketController{
		hub:             hub,
		markSeenUC:      usecase.NewMarkSeenUseCase(repo),
		log:             logger,
		inflightTimeout: 5 * time.Second,
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect from a separate origin in development.
		return true
	},
}

type inboundFrame struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId,omitempty"`
	UserID         string `json:"userId,omitempty"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades the HTTP request and processes frames until the client
// disconnects. The identity is bound once from the handshake query parameter;
// a missing or literal "undefined" user_id attaches as anonymous, which still
// receives presence broadcasts but is excluded from the online set.
func (ctl *MessagingSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "undefined" {
			userID = ""
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			return
		}

		conn := realtime.NewConnection(userID, ws)
		ctl.hub.Attach(conn)
		defer func() {
			ctl.hub.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) &&
					!errors.Is(err, websocket.ErrCloseSent) {
					ctl.log.Debug().Err(err).Str("connection_id", conn.ID).Msg("websocket read ended")
				}
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.log.Debug().Str("connection_id", conn.ID).Msg("discarding malformed frame")
				continue
			}

			switch frame.Type {
			case event.MarkMessagesAsSeen:
				ctl.handleMarkSeen(c, conn, frame)
			default:
				ctl.log.Debug().Str("type", frame.Type).Msg("discarding unknown frame type")
			}
		}
	}
}

// handleMarkSeen applies the seen acknowledgment. The payload userId is an
// untrusted hint: it must equal the identity bound at handshake time, or the
// request is dropped without any client-visible reaction. That silence is
// deliberate; an error would leak whether the guard fired.
func (ctl *MessagingSocketController) handleMarkSeen(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	if conn.Anonymous() || frame.UserID != conn.UserID {
		ctl.log.Warn().
			Str("connection_id", conn.ID).
			Str("claimed_user_id", frame.UserID).
			Msg("seen request identity mismatch, dropping")
		return
	}
	if frame.ConversationID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	otherID, err := ctl.markSeenUC.Execute(ctx, usecase.MarkSeenInput{
		ConversationID: frame.ConversationID,
		ReaderID:       conn.UserID,
	})
	if err != nil {
		ctl.log.Warn().Err(err).Str("conversation_id", frame.ConversationID).Msg("mark seen failed")
		return
	}

	// Tell the original sender their messages were read, if they're online.
	ctl.hub.DeliverToUser(otherID, event.NewMessageSeenFrame(frame.ConversationID))
}
