package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
)

func TestOrderHistoryOmitsPaymentReferences(t *testing.T) {
	repos := newTestRepos()
	orders := NewOrderService(repos, &config.Config{}, nil, testLogger())

	require.NoError(t, repos.Order.Create(context.Background(), &domain.Order{
		OrderNumber:   "ORD-1700000000000",
		CustomerEmail: "amy@example.com",
		CustomerName:  "Amy",
		Items: []domain.OrderItem{
			{Name: "Sunset Print", Size: "8x10", UnitPrice: 30, Quantity: 2},
		},
		TotalAmount:   60,
		PaymentStatus: domain.PaymentStatusCompleted,
		OrderStatus:   domain.OrderStatusProcessing,
		PaymentID:     "pi_3PqR7s2e",
	}))

	history, err := orders.History(context.Background(), "amy@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "ORD-1700000000000", history[0].OrderNumber)
	assert.Equal(t, domain.OrderStatusProcessing, history[0].OrderStatus)

	raw, err := json.Marshal(history)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "pi_3PqR7s2e")
	assert.NotContains(t, string(raw), "paymentId")
	assert.NotContains(t, string(raw), "paymentStatus")
}

func TestOrderHistoryNewestFirstAndScopedToEmail(t *testing.T) {
	repos := newTestRepos()
	orders := NewOrderService(repos, &config.Config{}, nil, testLogger())

	base := time.Now()
	require.NoError(t, repos.Order.Create(context.Background(), &domain.Order{
		OrderNumber:   "ORD-1",
		CustomerEmail: "amy@example.com",
		CreatedAt:     base.Add(-time.Hour),
	}))
	require.NoError(t, repos.Order.Create(context.Background(), &domain.Order{
		OrderNumber:   "ORD-2",
		CustomerEmail: "amy@example.com",
		CreatedAt:     base,
	}))
	require.NoError(t, repos.Order.Create(context.Background(), &domain.Order{
		OrderNumber:   "ORD-3",
		CustomerEmail: "bob@example.com",
		CreatedAt:     base,
	}))

	history, err := orders.History(context.Background(), "amy@example.com")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "ORD-2", history[0].OrderNumber)
	assert.Equal(t, "ORD-1", history[1].OrderNumber)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repos := newTestRepos()
	orders := NewOrderService(repos, &config.Config{}, nil, testLogger())

	_, err := orders.UpdateStatus(context.Background(), "ignored", domain.OrderStatus("misplaced"))
	assert.Error(t, err)
}
