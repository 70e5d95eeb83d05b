package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/api/middleware"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/service"
)

// CartAddRequest is the add-to-cart payload.
type CartAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size"`
}

// CartUpdateRequest sets an absolute line quantity. Size addresses the line
// for variant products; zero or negative removes the line.
type CartUpdateRequest struct {
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// CartRemoveRequest names the line identity to delete.
type CartRemoveRequest struct {
	Size string `json:"size"`
}

// HandleGetCart returns the session's cart priced against the live catalog.
func HandleGetCart(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := service.NewCartService(repos, logger)
		cart, err := svc.Get(c.Request.Context(), middleware.GetSessionID(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// HandleCartAdd merges an addition into the session cart.
func HandleCartAdd(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		productID, err := parseID(req.ProductID, "product")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		svc := service.NewCartService(repos, logger)
		cart, err := svc.Add(c.Request.Context(), middleware.GetSessionID(c), productID, req.Quantity, req.Size)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// HandleCartUpdate sets the absolute quantity for one cart line.
func HandleCartUpdate(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		productID, err := parseID(c.Param("productId"), "product")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		svc := service.NewCartService(repos, logger)
		cart, err := svc.Update(c.Request.Context(), middleware.GetSessionID(c), productID, req.Quantity, req.Size)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// HandleCartRemove deletes one cart line by exact identity. Size may come
// from the body or a query parameter since DELETE bodies are optional.
func HandleCartRemove(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartRemoveRequest
		_ = c.ShouldBindJSON(&req)
		size := req.Size
		if size == "" {
			size = c.Query("size")
		}

		productID, err := parseID(c.Param("productId"), "product")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		svc := service.NewCartService(repos, logger)
		cart, err := svc.Remove(c.Request.Context(), middleware.GetSessionID(c), productID, size)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// HandleCartClear deletes the whole session cart.
func HandleCartClear(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := service.NewCartService(repos, logger)
		if err := svc.Clear(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
