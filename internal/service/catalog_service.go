package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

// SizeSelection is one row of the admin's per-size picker when creating or
// editing a product: a print-size template plus the checked flag, quantity and
// price delta the admin entered for it.
type SizeSelection struct {
	Name            string  `json:"name"`
	Checked         bool    `json:"checked"`
	Quantity        int     `json:"quantity"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

// NormalizeSelections reconciles the checkbox with the quantity field: a
// positive quantity checks the box. The reverse default — checking an empty
// row fills in a 1 — is the admin form's own interaction sync; the server
// takes the submitted quantity at face value, so a row checked with an
// explicit zero keeps it and ShapeVariants drops the size.
func NormalizeSelections(selections []SizeSelection) []SizeSelection {
	out := make([]SizeSelection, len(selections))
	for i, sel := range selections {
		if sel.Quantity > 0 {
			sel.Checked = true
		}
		out[i] = sel
	}
	return out
}

// ShapeVariants converts normalized size selections into the product's
// persisted variant list. A selection contributes a variant iff it is checked
// with a positive quantity; everything else is omitted entirely rather than
// stored as a zero-stock variant. Order is preserved.
func ShapeVariants(selections []SizeSelection) []domain.Variant {
	variants := make([]domain.Variant, 0, len(selections))
	for _, sel := range selections {
		if !sel.Checked || sel.Quantity <= 0 {
			continue
		}
		variants = append(variants, domain.Variant{
			Size:            sel.Name,
			Quantity:        sel.Quantity,
			AdditionalPrice: sel.AdditionalPrice,
		})
	}
	return variants
}

// CreateProductInput carries the admin product form.
type CreateProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	Quantity    int             `json:"quantity"`
	Sizes       []SizeSelection `json:"sizes"`
}

type catalogService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repos *repository.Repositories, logger *zap.Logger) *catalogService {
	return &catalogService{
		repos:  repos,
		logger: logger,
	}
}

// ProductListing is one storefront listing row: the product plus its derived
// stock totals, so clients do not re-implement the flat-or-variant rule.
type ProductListing struct {
	*domain.Product
	TotalStock int  `json:"totalStock"`
	InStock    bool `json:"inStock"`
}

// List returns the catalog with stock totals attached to each product.
func (s *catalogService) List(ctx context.Context, filter repository.ProductFilter) ([]ProductListing, error) {
	products, err := s.repos.Product.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	listings := make([]ProductListing, 0, len(products))
	for _, p := range products {
		total := p.TotalStock()
		listings = append(listings, ProductListing{
			Product:    p,
			TotalStock: total,
			InStock:    total > 0,
		})
	}
	return listings, nil
}

// CreateProduct validates the admin form and persists the product. When size
// selections yield any variants, the flat quantity is dropped: a product
// tracks stock one way or the other, never both.
func (s *catalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := validateProductInput(input.Name, input.Price); err != nil {
		return nil, err
	}

	variants := ShapeVariants(NormalizeSelections(input.Sizes))

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Images:      input.Images,
	}
	if len(variants) > 0 {
		product.Variants = variants
	} else {
		product.Quantity = input.Quantity
	}

	if err := s.repos.Product.Create(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Info("Product created",
		zap.String("product_id", product.ID.Hex()),
		zap.Int("variant_count", len(product.Variants)))
	return product, nil
}

// UpdateProduct replaces the stored product with the submitted form, applying
// the same shaping rules as creation.
func (s *catalogService) UpdateProduct(ctx context.Context, id primitive.ObjectID, input CreateProductInput) (*domain.Product, error) {
	if err := validateProductInput(input.Name, input.Price); err != nil {
		return nil, err
	}

	existing, err := s.repos.Product.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	variants := ShapeVariants(NormalizeSelections(input.Sizes))

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Category = input.Category
	if len(input.Images) > 0 {
		existing.Images = input.Images
	}
	if len(variants) > 0 {
		existing.Variants = variants
		existing.Quantity = 0
	} else {
		existing.Variants = nil
		existing.Quantity = input.Quantity
	}

	if err := s.repos.Product.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func validateProductInput(name string, price float64) error {
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if price < 0 {
		fields["price"] = "price must not be negative"
	}
	if len(fields) > 0 {
		return &errors.ErrValidation{Message: "invalid product", Fields: fields}
	}
	return nil
}
