package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/api/handlers"
	"github.com/printhaus/shopapi/internal/api/middleware"
	"github.com/printhaus/shopapi/internal/cloudinary"
	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/mail"
	"github.com/printhaus/shopapi/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, uploader *cloudinary.Client, mailer *mail.Mailer, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.PublicURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := middleware.AuthMiddleware(cfg.Auth, repos, logger)
	adminOnly := middleware.AdminOnly()

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.SessionMiddleware(cfg.Redis.CartTTL))
	{
		// Public catalog
		apiGroup.GET("/products", handlers.HandleListProducts(repos, logger))
		apiGroup.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		apiGroup.GET("/categories", handlers.HandleListCategories(repos, logger))
		apiGroup.GET("/print-sizes", handlers.HandleListPrintSizes(repos, logger))

		// Public settings + rendered theme
		apiGroup.GET("/settings/public", handlers.HandleGetPublicSettings(repos, logger))
		apiGroup.GET("/settings/theme.css", handlers.HandleThemeCSS(repos, logger))

		// Session cart
		apiGroup.GET("/cart", handlers.HandleGetCart(repos, logger))
		apiGroup.POST("/cart/add", handlers.HandleCartAdd(repos, logger))
		apiGroup.PUT("/cart/update/:productId", handlers.HandleCartUpdate(repos, logger))
		apiGroup.DELETE("/cart/remove/:productId", handlers.HandleCartRemove(repos, logger))
		apiGroup.DELETE("/cart/clear", handlers.HandleCartClear(repos, logger))

		// Checkout and order lookup
		apiGroup.POST("/orders/create-checkout-session", handlers.HandleCreateCheckout(cfg, repos, mailer, logger))
		apiGroup.POST("/orders/confirm", handlers.HandleConfirmOrder(cfg, repos, mailer, logger))
		apiGroup.GET("/orders/my-orders", handlers.HandleMyOrders(cfg, repos, logger))

		// Auth
		apiGroup.POST("/auth/login", handlers.HandleLogin(cfg, repos, logger))
		apiGroup.POST("/auth/logout", handlers.HandleLogout())
		apiGroup.GET("/auth/me", authed, handlers.HandleMe())
		apiGroup.POST("/auth/change-password", authed, handlers.HandleChangePassword(cfg, repos, logger))
		apiGroup.POST("/auth/change-email", authed, handlers.HandleChangeEmail(cfg, repos, logger))

		// Admin catalog management
		apiGroup.POST("/products", authed, adminOnly, handlers.HandleCreateProduct(repos, logger))
		apiGroup.PUT("/products/:id", authed, adminOnly, handlers.HandleUpdateProduct(repos, logger))
		apiGroup.DELETE("/products/:id", authed, adminOnly, handlers.HandleDeleteProduct(repos, logger))
		apiGroup.POST("/print-sizes", authed, adminOnly, handlers.HandleCreatePrintSize(repos, logger))
		apiGroup.PUT("/print-sizes/:id", authed, adminOnly, handlers.HandleUpdatePrintSize(repos, logger))
		apiGroup.DELETE("/print-sizes/:id", authed, adminOnly, handlers.HandleDeletePrintSize(repos, logger))

		// Admin settings and design
		apiGroup.GET("/settings", authed, adminOnly, handlers.HandleGetSettings(repos, logger))
		apiGroup.PUT("/settings", authed, adminOnly, handlers.HandleUpdateSettings(repos, logger))
		apiGroup.PUT("/settings/design", authed, adminOnly, handlers.HandleUpdateDesign(repos, logger))
		apiGroup.GET("/settings/presets", authed, adminOnly, handlers.HandleListPresets())
		apiGroup.POST("/settings/presets/:name/apply", authed, adminOnly, handlers.HandleApplyPreset(repos, logger))

		// Admin uploads and orders
		admin := apiGroup.Group("/admin", authed, adminOnly)
		{
			admin.POST("/uploads", handlers.HandleUploadImage(uploader, logger))
			admin.GET("/orders", handlers.HandleListOrders(repos, logger))
			admin.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))
			admin.PUT("/orders/:id", handlers.HandleUpdateOrderStatus(cfg, repos, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
