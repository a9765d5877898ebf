package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/auth"
	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/persistence/repository/adapter"
)

// FollowController toggles the caller's follow edge to another user.
type FollowController struct {
	uc *usecase.FollowUseCase
}

func NewFollowController(pool *pgxpool.Pool) *FollowController {
	repo := repoAdapter.NewPgUserRepository(pool)
	return &FollowController{uc: usecase.NewFollowUseCase(repo)}
}

func (h *FollowController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		following, err := h.uc.Execute(ctx, usecase.FollowInput{
			UserID:   userID,
			TargetID: c.Param("id"),
		})
		if err != nil {
			switch {
			case errors.Is(err, user.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		msg := "user unfollowed"
		if following {
			msg = "user followed"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "following": following})
	}
}
