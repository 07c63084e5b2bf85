package handlers

import (
	"net/http"

	"scholar_backend/internal/logger"
	"scholar_backend/internal/services"
	"scholar_backend/internal/services/dto"
	"scholar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the credential endpoints. Unlike the resource
// routes these respond with {success, message, ...} bodies, which the
// SPA's login screens expect.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	// /signup is a legacy alias kept for older clients; same contract.
	rg.POST("/signup", h.Register)
	rg.POST("/login", h.Login)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.authFailure(c, apperrors.ErrMissingCredentials)
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.authFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		ID:      user.ID,
		Email:   user.Email,
		Message: "User registered successfully.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.authFailure(c, apperrors.ErrInvalidCredentials)
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Login(db, &req)
	if err != nil {
		h.authFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Email:   user.Email,
		Message: "Login successful.",
	})
}

// authFailure renders the auth-specific error shape. Unclassified
// errors stay generic; detail goes to the log only.
func (h *AuthHandler) authFailure(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}
	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "auth request failed", appErr, "path", c.Request.URL.Path)
	}
	c.JSON(appErr.HTTPCode, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
