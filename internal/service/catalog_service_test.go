package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

func TestNormalizeSelectionsQuantityChecksBox(t *testing.T) {
	out := NormalizeSelections([]SizeSelection{
		{Name: "8x10", Checked: false, Quantity: 3},
	})
	assert.True(t, out[0].Checked, "entering a positive quantity auto-checks the box")
	assert.Equal(t, 3, out[0].Quantity)
}

func TestNormalizeSelectionsCheckedZeroSurvives(t *testing.T) {
	out := NormalizeSelections([]SizeSelection{
		{Name: "8x10", Checked: true, Quantity: 0},
	})
	assert.True(t, out[0].Checked)
	assert.Equal(t, 0, out[0].Quantity, "an explicit zero is kept so the size is omitted from the variants")
}

func TestNormalizeSelectionsUncheckedZeroStaysOut(t *testing.T) {
	out := NormalizeSelections([]SizeSelection{
		{Name: "8x10", Checked: false, Quantity: 0},
	})
	assert.False(t, out[0].Checked)
	assert.Equal(t, 0, out[0].Quantity)
}

func TestShapeVariantsOmitsUncheckedAndZero(t *testing.T) {
	variants := ShapeVariants([]SizeSelection{
		{Name: "5x7", Checked: true, Quantity: 2, AdditionalPrice: 0},
		{Name: "8x10", Checked: false, Quantity: 4},
		{Name: "11x14", Checked: true, Quantity: 0, AdditionalPrice: 5},
	})

	require.Len(t, variants, 1)
	assert.Equal(t, "5x7", variants[0].Size)
	assert.Equal(t, 2, variants[0].Quantity)
}

func TestShapeVariantsPreservesOrder(t *testing.T) {
	variants := ShapeVariants([]SizeSelection{
		{Name: "5x7", Checked: true, Quantity: 1},
		{Name: "8x10", Checked: true, Quantity: 1},
		{Name: "16x20", Checked: true, Quantity: 1},
	})

	require.Len(t, variants, 3)
	assert.Equal(t, []string{"5x7", "8x10", "16x20"},
		[]string{variants[0].Size, variants[1].Size, variants[2].Size})
}

// Create a product with one stocked and one zero-quantity size: only the
// stocked variant persists, and adding the omitted size to a cart fails.
func TestCreateProductZeroQuantityVariantOmitted(t *testing.T) {
	repos := newTestRepos()
	catalog := NewCatalogService(repos, testLogger())
	carts := NewCartService(repos, testLogger())

	product, err := catalog.CreateProduct(context.Background(), CreateProductInput{
		Name:  "Sunset Print",
		Price: 30,
		Sizes: []SizeSelection{
			{Name: "8x10", Checked: true, Quantity: 2, AdditionalPrice: 0},
			{Name: "11x14", Checked: true, Quantity: 0, AdditionalPrice: 5},
		},
	})
	require.NoError(t, err)

	require.Len(t, product.Variants, 1)
	assert.Equal(t, "8x10", product.Variants[0].Size)

	_, err = carts.Add(context.Background(), session, product.ID, 1, "11x14")
	var nfErr *errors.ErrNotFound
	assert.ErrorAs(t, err, &nfErr, "the omitted size does not exist on the product")
}

func TestCreateProductFlatWhenNoVariants(t *testing.T) {
	repos := newTestRepos()
	catalog := NewCatalogService(repos, testLogger())

	product, err := catalog.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Mini Card",
		Price:    5,
		Quantity: 40,
	})
	require.NoError(t, err)

	assert.False(t, product.HasVariants())
	assert.Equal(t, 40, product.Quantity)
}

func TestCreateProductValidation(t *testing.T) {
	repos := newTestRepos()
	catalog := NewCatalogService(repos, testLogger())

	_, err := catalog.CreateProduct(context.Background(), CreateProductInput{Price: -1})
	var valErr *errors.ErrValidation
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "name")
	assert.Contains(t, valErr.Fields, "price")
}

func TestListDerivesStockTotals(t *testing.T) {
	repos := newTestRepos()
	catalog := NewCatalogService(repos, testLogger())

	_, err := catalog.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Sold Out Card",
		Price:    5,
		Quantity: 0,
	})
	require.NoError(t, err)

	_, err = catalog.CreateProduct(context.Background(), CreateProductInput{
		Name:  "Sunset Print",
		Price: 30,
		Sizes: []SizeSelection{
			{Name: "8x10", Checked: true, Quantity: 2},
			{Name: "16x20", Checked: true, Quantity: 3, AdditionalPrice: 10},
		},
	})
	require.NoError(t, err)

	listings, err := catalog.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 2)

	byName := map[string]ProductListing{}
	for _, l := range listings {
		byName[l.Name] = l
	}
	assert.Equal(t, 0, byName["Sold Out Card"].TotalStock)
	assert.False(t, byName["Sold Out Card"].InStock)
	assert.Equal(t, 5, byName["Sunset Print"].TotalStock, "variant quantities sum")
	assert.True(t, byName["Sunset Print"].InStock)
}

func TestUpdateProductSwitchesStockRepresentation(t *testing.T) {
	repos := newTestRepos()
	catalog := NewCatalogService(repos, testLogger())

	product, err := catalog.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Poster",
		Price:    15,
		Quantity: 10,
	})
	require.NoError(t, err)

	updated, err := catalog.UpdateProduct(context.Background(), product.ID, CreateProductInput{
		Name:  "Poster",
		Price: 15,
		Sizes: []SizeSelection{
			{Name: "18x24", Checked: true, Quantity: 6},
		},
	})
	require.NoError(t, err)

	assert.True(t, updated.HasVariants())
	assert.Equal(t, 0, updated.Quantity, "a product uses one stock representation at a time")

	stored, err := repos.Product.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Variant{{Size: "18x24", Quantity: 6}}, stored.Variants)
}
