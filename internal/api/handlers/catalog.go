package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/service"
)

// HandleListProducts returns the public product listing with optional search
// and category filters. Each row carries derived stock totals for the
// storefront's sold-out badges.
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.ProductFilter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		}

		svc := service.NewCatalogService(repos, logger)
		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleGetProduct returns one product by id.
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "product")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		product, err := repos.Product.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleListCategories returns the distinct categories in use, for the
// storefront filter bar.
func HandleListCategories(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repos.Product.Categories(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// HandleListPrintSizes returns the size templates, ordered for display.
func HandleListPrintSizes(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sizes, err := repos.PrintSize.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"printSizes": sizes})
	}
}
