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

// ProfileController returns a public account view; the query resolves as a
// user id when it parses as a uuid, otherwise as a username.
type ProfileController struct {
	uc *usecase.GetProfileUseCase
}

func NewProfileController(pool *pgxpool.Pool) *ProfileController {
	repo := repoAdapter.NewPgUserRepository(pool)
	return &ProfileController{uc: usecase.NewGetProfileUseCase(repo)}
}

type profileResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	ProfilePic string   `json:"profilePic"`
	Followers  []string `json:"followers"`
	Following  []string `json:"following"`
}

func (h *ProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		profile, err := h.uc.Execute(ctx, c.Param("query"))
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

		followers := profile.Followers
		if followers == nil {
			followers = []string{}
		}
		following := profile.Following
		if following == nil {
			following = []string{}
		}
		c.JSON(http.StatusOK, profileResponse{
			ID:         profile.User.ID,
			Name:       profile.User.Name,
			Username:   profile.User.Username,
			Email:      profile.User.Email,
			ProfilePic: profile.User.ProfilePic,
			Followers:  followers,
			Following:  following,
		})
	}
}
