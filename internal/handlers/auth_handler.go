package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "florada/internal/errors"
	"florada/internal/services"
)

// AuthHandler handles registration enquiries and session identity.
type AuthHandler struct {
	authService services.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthServicer) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration form payload.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Phone     string `json:"phone" binding:"required,min=8,max=20"`
	EventName string `json:"event_name" binding:"required,min=1,max=200"`
	EventDate string `json:"event_date" binding:"required,date_only"`
}

// Register validates the customer's phone and opens a budget session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sess, token, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:      req.Name,
		Phone:     req.Phone,
		EventName: req.EventName,
		EventDate: req.EventDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"session": sess,
	})
}

// Profile returns the registered user info for the current session.
func (h *AuthHandler) Profile(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.authService.Profile(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout discards the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.authService.Logout(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
