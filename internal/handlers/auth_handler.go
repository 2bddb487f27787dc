package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"choirfin/internal/config"
	apperrors "choirfin/internal/errors"
	"choirfin/internal/middleware"
)

// AuthHandler handles authentication for the single admin principal.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the treasurer and issues a JWT.
// @Summary     Admin login
// @Description Authenticate the configured admin and receive a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Credentials"
// @Success     200 {object} map[string]string "token"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg := config.Get()
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(cfg.AdminEmail)) == 1
	passOK := bcrypt.CompareHashAndPassword(cfg.AdminPasswordHash, []byte(req.Password)) == nil
	if !emailOK || !passOK {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(req.Email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
