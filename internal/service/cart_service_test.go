package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

const session = "test-session"

func seedFlatProduct(t *testing.T, repos *repository.Repositories, price float64, stock int) primitive.ObjectID {
	t.Helper()
	p := &domain.Product{Name: "Flat Print", Price: price, Quantity: stock}
	require.NoError(t, repos.Product.Create(context.Background(), p))
	return p.ID
}

func seedVariantProduct(t *testing.T, repos *repository.Repositories, price float64, variants ...domain.Variant) primitive.ObjectID {
	t.Helper()
	p := &domain.Product{Name: "Variant Print", Price: price, Variants: variants}
	require.NoError(t, repos.Product.Create(context.Background(), p))
	return p.ID
}

func TestAddMergesSameIdentity(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedFlatProduct(t, repos, 20, 10)

	_, err := svc.Add(context.Background(), session, id, 2, "")
	require.NoError(t, err)
	cart, err := svc.Add(context.Background(), session, id, 3, "")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddRejectsBeyondFlatStock(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedFlatProduct(t, repos, 20, 5)

	// Adds of 2 succeed until the cumulative quantity would pass 5
	_, err := svc.Add(context.Background(), session, id, 2, "")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), session, id, 2, "")
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), session, id, 2, "")
	var capErr *errors.ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 5, capErr.Available)

	// The failed add applied nothing: quantity stays at the largest
	// reachable value, 4
	cart, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestAddDistinctVariantsStayDistinct(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25,
		domain.Variant{Size: "8x10", Quantity: 3, AdditionalPrice: 0},
		domain.Variant{Size: "11x14", Quantity: 3, AdditionalPrice: 5},
	)

	_, err := svc.Add(context.Background(), session, id, 1, "8x10")
	require.NoError(t, err)
	cart, err := svc.Add(context.Background(), session, id, 1, "11x14")
	require.NoError(t, err)

	require.Len(t, cart.Items, 2, "different variants must never merge")
	assert.NotEqual(t, cart.Items[0].Size, cart.Items[1].Size)
}

func TestAddVariantRequiresSize(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25, domain.Variant{Size: "8x10", Quantity: 3})

	_, err := svc.Add(context.Background(), session, id, 1, "")
	var valErr *errors.ErrValidation
	assert.ErrorAs(t, err, &valErr)
}

func TestAddUnknownVariantIsNotFound(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25, domain.Variant{Size: "8x10", Quantity: 3})

	_, err := svc.Add(context.Background(), session, id, 1, "16x20")
	var nfErr *errors.ErrNotFound
	assert.ErrorAs(t, err, &nfErr)
}

func TestAddZeroStockVariantRejected(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25,
		domain.Variant{Size: "8x10", Quantity: 2, AdditionalPrice: 0},
		domain.Variant{Size: "11x14", Quantity: 0, AdditionalPrice: 5},
	)

	_, err := svc.Add(context.Background(), session, id, 1, "11x14")
	var capErr *errors.ErrCapacityExceeded
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 0, capErr.Available)
}

func TestAddRecordsVariantPriceDelta(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25, domain.Variant{Size: "11x14", Quantity: 3, AdditionalPrice: 5})

	cart, err := svc.Add(context.Background(), session, id, 2, "11x14")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5.0, cart.Items[0].AdditionalPrice)
	assert.Equal(t, 30.0, cart.Items[0].UnitPrice)
	assert.Equal(t, 60.0, cart.Total)
}

func TestRemoveExactIdentityOnly(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25,
		domain.Variant{Size: "8x10", Quantity: 3},
		domain.Variant{Size: "11x14", Quantity: 3},
	)

	_, err := svc.Add(context.Background(), session, id, 1, "8x10")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), session, id, 1, "11x14")
	require.NoError(t, err)

	cart, err := svc.Remove(context.Background(), session, id, "8x10")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "11x14", cart.Items[0].Size)
}

func TestUpdateZeroRemovesLine(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedFlatProduct(t, repos, 20, 10)

	_, err := svc.Add(context.Background(), session, id, 3, "")
	require.NoError(t, err)

	cart, err := svc.Update(context.Background(), session, id, 0, "")
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "update to zero behaves like remove")
}

func TestUpdateSetsAbsoluteQuantity(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedFlatProduct(t, repos, 20, 10)

	_, err := svc.Add(context.Background(), session, id, 3, "")
	require.NoError(t, err)

	cart, err := svc.Update(context.Background(), session, id, 7, "")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	_, err = svc.Update(context.Background(), session, id, 11, "")
	var capErr *errors.ErrCapacityExceeded
	assert.ErrorAs(t, err, &capErr)
}

func TestUpdateVariantRequiresSize(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25, domain.Variant{Size: "8x10", Quantity: 5})

	_, err := svc.Add(context.Background(), session, id, 1, "8x10")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), session, id, 2, "")
	var valErr *errors.ErrValidation
	assert.ErrorAs(t, err, &valErr, "variant products must be addressed by size")

	cart, err := svc.Update(context.Background(), session, id, 2, "8x10")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestTotalsFollowPriceChanges(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedVariantProduct(t, repos, 25, domain.Variant{Size: "11x14", Quantity: 5, AdditionalPrice: 5})

	_, err := svc.Add(context.Background(), session, id, 1, "11x14")
	require.NoError(t, err)

	// Change the base price and the variant's delta after the line was added
	product, err := repos.Product.GetByID(context.Background(), id)
	require.NoError(t, err)
	product.Price = 40
	product.Variants[0].AdditionalPrice = 99
	require.NoError(t, repos.Product.Update(context.Background(), product))

	cart, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	// New base price shows up; the delta recorded at add time does not move
	assert.Equal(t, 45.0, cart.Items[0].UnitPrice)
	assert.Equal(t, 45.0, cart.Total)
}

func TestClearEmptiesCart(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	id := seedFlatProduct(t, repos, 20, 10)

	_, err := svc.Add(context.Background(), session, id, 3, "")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), session))

	cart, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestViewDropsDeletedProducts(t *testing.T) {
	repos := newTestRepos()
	svc := NewCartService(repos, testLogger())
	keep := seedFlatProduct(t, repos, 10, 5)
	gone := seedFlatProduct(t, repos, 20, 5)

	_, err := svc.Add(context.Background(), session, keep, 1, "")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), session, gone, 1, "")
	require.NoError(t, err)

	require.NoError(t, repos.Product.Delete(context.Background(), gone))

	cart, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, keep, cart.Items[0].ProductID)
	assert.Equal(t, 10.0, cart.Total)
}
