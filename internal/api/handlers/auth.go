package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/api/middleware"
	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/service"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// HandleLogin verifies credentials and returns a signed token, also setting
// it as an HTTP-only cookie for the admin dashboard.
func HandleLogin(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewAuthService(repos, cfg.Auth, logger)
		result, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.SetCookie("auth_token", result.Token, int(cfg.Auth.TokenTTL.Seconds()), "/", "", cfg.Environment == "production", true)
		c.JSON(http.StatusOK, result)
	}
}

// HandleLogout clears the auth cookie.
func HandleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// HandleMe returns the authenticated user.
func HandleMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// HandleChangePassword changes the authenticated user's password after
// verifying the current one.
func HandleChangePassword(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			CurrentPassword string `json:"currentPassword" binding:"required"`
			NewPassword     string `json:"newPassword" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewAuthService(repos, cfg.Auth, logger)
		if err := svc.ChangePassword(c.Request.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password changed"})
	}
}

// HandleChangeEmail moves the authenticated account to a new address after
// verifying the password.
func HandleChangeEmail(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req struct {
			Password string `json:"password" binding:"required"`
			NewEmail string `json:"newEmail" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewAuthService(repos, cfg.Auth, logger)
		if err := svc.ChangeEmail(c.Request.Context(), user, req.Password, req.NewEmail); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "email changed"})
	}
}
