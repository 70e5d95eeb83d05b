package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/api/middleware"
	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/mail"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/service"
)

// HandleCreateCheckout opens a hosted payment session for the visitor's cart.
func HandleCreateCheckout(cfg *config.Config, repos *repository.Repositories, mailer *mail.Mailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CheckoutInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewOrderService(repos, cfg, mailer, logger)
		result, err := svc.CreateCheckout(c.Request.Context(), middleware.GetSessionID(c), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// HandleConfirmOrder finalizes a paid checkout session into an order.
func HandleConfirmOrder(cfg *config.Config, repos *repository.Repositories, mailer *mail.Mailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SessionID string `json:"sessionId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewOrderService(repos, cfg, mailer, logger)
		order, err := svc.ConfirmOrder(c.Request.Context(), req.SessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
