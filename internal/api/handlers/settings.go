package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/service"
)

// HandleGetPublicSettings returns the storefront's view of the shop settings:
// branding, theme and the publishable payment key. Unauthenticated.
func HandleGetPublicSettings(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := service.NewSettingsService(repos, logger)
		settings, err := svc.GetPublic(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// HandleThemeCSS renders the stored theme as the storefront stylesheet. The
// storefront links this once; saving a theme change takes effect on the next
// fetch with no markup changes.
func HandleThemeCSS(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := service.NewSettingsService(repos, logger)
		css, err := svc.ThemeCSS(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	}
}
