package handlers

import (
	"errors"
	"log"
	"net/http"

	request "wheelworks/internal/adapter/http/dto/request"
	"wheelworks/internal/adapter/http/middleware"
	"wheelworks/internal/usecase"
	"wheelworks/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues and clears the dashboard session cookie.

type AuthHandler struct {
	sessions usecase.ISessionUseCase
}

func NewAuthHandler(sessions usecase.ISessionUseCase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login checks the shared credentials and sets the session cookie. The error
// message never distinguishes unknown username from wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.sessions.Login(payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.SetSessionCookie(c, token)
	log.Printf("[auth][handler] login success")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
