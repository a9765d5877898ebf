package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/usecase"
	repoAdapter "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/persistence/repository/adapter"
)

// LoginController verifies credentials and issues the session credential.
type LoginController struct {
	uc        *usecase.LoginUseCase
	jwtSecret string
}

func NewLoginController(pool *pgxpool.Pool, jwtSecret string) *LoginController {
	repo := repoAdapter.NewPgUserRepository(pool)
	return &LoginController{uc: usecase.NewLoginUseCase(repo), jwtSecret: jwtSecret}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		u, err := h.uc.Execute(ctx, usecase.LoginInput{Username: req.Username, Password: req.Password})
		if err != nil {
			switch {
			case errors.Is(err, user.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, issueSession(c, h.jwtSecret, u))
	}
}
