package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	queueport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/queue/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/controller"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/adapter"
)

// RegisterRoutes registers messaging HTTP endpoints and the realtime websocket
// under the given router group. It constructs per-endpoint controllers and
// binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc, pool *pgxpool.Pool, client queueport.Client, cache cacheport.Cache, uploader mediaport.Uploader, hub *realtime.Hub, logger zerolog.Logger) {
	sendCtl := controller.NewSendMessageController(pool, uploader, cache, hub, logger)
	sendMobileCtl := controller.NewSendMobileMessageController(client)
	getCtl := controller.NewGetMessageController(pool)
	listCtl := controller.NewListConversationsController(pool, cache)
	socketCtl := controller.NewMessagingSocketController(repoAdapter.NewPgMessagingRepository(pool), hub, logger)

	msgs := g.Group("/messages")
	msgs.POST("", authMW, sendCtl.Handle())
	msgs.POST("/mobile", authMW, sendMobileCtl.Handle())
	msgs.GET("/conversations", authMW, listCtl.Handle())
	msgs.GET("/:otherUserId", authMW, getCtl.Handle())

	// The websocket handshake carries its own identity parameter; the seen
	// guard is enforced inside the socket controller.
	g.GET("/realtime/ws", socketCtl.Handle())
}
