package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinacart/recipes-api/internal/logger"
	"github.com/culinacart/recipes-api/internal/service"
	"github.com/culinacart/recipes-api/internal/types"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
	log  *logger.Logger
}

func NewAuthHandler(auth *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// Login verifies the submitted credentials and responds with a bearer
// token. Unknown username and wrong password produce the identical error.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "username or password can not be empty")
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, "Incorrect username or password")
			return
		}
		h.log.Error().Err(err).Str("username", req.Username).Msg("login lookup failed")
		respondError(c, http.StatusInternalServerError, "login failed.")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		h.log.Error().Err(err).Msg("token generation failed")
		respondError(c, http.StatusInternalServerError, "login failed.")
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Success:     true,
		AccessToken: token,
		Data: gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
