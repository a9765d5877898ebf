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

// SignupController creates an account and issues the session credential in
// the same response: cookie for web, token in the body for mobile.
type SignupController struct {
	uc        *usecase.SignupUseCase
	jwtSecret string
}

func NewSignupController(pool *pgxpool.Pool, jwtSecret string) *SignupController {
	repo := repoAdapter.NewPgUserRepository(pool)
	return &SignupController{uc: usecase.NewSignupUseCase(repo), jwtSecret: jwtSecret}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userResponse is shared by the signup and login endpoints.
type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
	Token      string `json:"token,omitempty"`
}

func (h *SignupController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		u, err := h.uc.Execute(ctx, usecase.SignupInput{
			Name:     req.Name,
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, user.ErrUsernameTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, issueSession(c, h.jwtSecret, u))
	}
}

// issueSession generates the credential for the new session. Web clients get
// a cookie; mobile clients get the token in the body.
func issueSession(c *gin.Context, secret string, u *user.User) userResponse {
	resp := userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}

	token, err := auth.GenerateToken(secret, u.ID, auth.TokenTTL)
	if err != nil {
		return resp
	}

	if c.GetHeader(auth.PlatformHeader) == "mobile" {
		resp.Token = token
	} else {
		auth.SetWebCookie(c, token)
	}
	return resp
}
