package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	queueport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/queue/port"
	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	messagingHTTP "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/http"
	postHTTP "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/presentation/http"
	userHTTP "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/presentation/http"
)

// Dependencies bundles the shared infrastructure handed down to the HTTP layer.
type Dependencies struct {
	Pool      *pgxpool.Pool
	Cache     cacheport.Cache
	Queue     queueport.Client
	Uploader  mediaport.Uploader
	Hub       *realtime.Hub
	JWTSecret string
	Logger    zerolog.Logger
}

// RegisterRoutes mounts all version 1 API routes under /api/v1.
func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	v1 := r.Group("/api/v1")
	authMW := auth.Middleware(deps.JWTSecret)

	userHTTP.RegisterRoutes(v1, authMW, deps.Pool, deps.JWTSecret)
	postHTTP.RegisterRoutes(v1, authMW, deps.Pool, deps.Uploader)
	messagingHTTP.RegisterRoutes(v1, authMW, deps.Pool, deps.Queue, deps.Cache, deps.Uploader, deps.Hub, deps.Logger)
}
