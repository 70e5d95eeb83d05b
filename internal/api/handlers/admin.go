package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/cloudinary"
	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/internal/service"
	"github.com/printhaus/shopapi/internal/theme"
)

// HandleCreateProduct creates a product from the admin form, shaping the size
// selections into variants.
func HandleCreateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateProductInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewCatalogService(repos, logger)
		product, err := svc.CreateProduct(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// HandleUpdateProduct replaces a product with the submitted form.
func HandleUpdateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "product")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		var req service.CreateProductInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewCatalogService(repos, logger)
		product, err := svc.UpdateProduct(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleDeleteProduct deletes a product. Past orders keep their denormalized
// item snapshots; nothing cascades.
func HandleDeleteProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "product")
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if err := repos.Product.Delete(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

// HandleUploadImage accepts one multipart image and returns its hosted URL.
// Used by the product form and the settings logo picker.
func HandleUploadImage(uploader *cloudinary.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		defer file.Close()

		folder := c.DefaultPostForm("folder", "products")
		url, err := uploader.Upload(c.Request.Context(), file, header.Filename, folder)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// PrintSizeRequest is the admin size-template form.
type PrintSizeRequest struct {
	Name       string `json:"name" binding:"required"`
	Dimensions string `json:"dimensions"`
	Order      int    `json:"order"`
}

// HandleCreatePrintSize creates a size template.
func HandleCreatePrintSize(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PrintSizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		size := &domain.PrintSize{
			Name:       req.Name,
			Dimensions: req.Dimensions,
			Order:      req.Order,
		}
		if err := repos.PrintSize.Create(c.Request.Context(), size); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, size)
	}
}

// HandleUpdatePrintSize updates a size template. Products that copied the
// template keep their variants as-is.
func HandleUpdatePrintSize(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "print_size")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		var req PrintSizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		size, err := repos.PrintSize.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		size.Name = req.Name
		size.Dimensions = req.Dimensions
		size.Order = req.Order

		if err := repos.PrintSize.Update(c.Request.Context(), size); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, size)
	}
}

// HandleDeletePrintSize deletes a size template.
func HandleDeletePrintSize(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "print_size")
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if err := repos.PrintSize.Delete(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "print size deleted"})
	}
}

// HandleGetSettings returns the full settings record for the admin dashboard.
func HandleGetSettings(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := service.NewSettingsService(repos, logger)
		settings, err := svc.Get(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// HandleUpdateSettings applies the admin branding/design form over the
// singleton settings record.
func HandleUpdateSettings(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.UpdateSettingsInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewSettingsService(repos, logger)
		settings, err := svc.Update(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// HandleUpdateDesign replaces the stored theme document wholesale; the admin
// design page always submits the full theme it is previewing.
func HandleUpdateDesign(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Theme theme.Config `json:"theme"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewSettingsService(repos, logger)
		settings, err := svc.Update(c.Request.Context(), service.UpdateSettingsInput{Theme: &req.Theme})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// HandleListPresets returns the available theme preset names.
func HandleListPresets() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"presets": theme.PresetNames()})
	}
}

// HandleApplyPreset replaces the stored theme with a named preset.
func HandleApplyPreset(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := service.NewSettingsService(repos, logger)
		settings, err := svc.ApplyPreset(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// HandleListOrders returns orders for the admin dashboard, newest first.
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 || limit > 200 {
			limit = 50
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		orders, err := repos.Order.List(c.Request.Context(), limit, offset)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// HandleGetOrder returns one order by id.
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"), "order")
		if err != nil {
			respondError(c, logger, err)
			return
		}
		order, err := repos.Order.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// HandleUpdateOrderStatus advances an order's fulfilment status.
func HandleUpdateOrderStatus(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status domain.OrderStatus `json:"orderStatus" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		svc := service.NewOrderService(repos, cfg, nil, logger)
		order, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
