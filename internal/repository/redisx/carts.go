package redisx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/domain"
)

type cartRepository struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCartRepository creates a Redis-backed cart repository. Carts expire after
// ttl of inactivity; every save refreshes the clock.
func NewCartRepository(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *cartRepository {
	return &cartRepository{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cart for a session. A session with no stored cart gets an
// empty one, not an error.
func (r *cartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	key := fmt.Sprintf(KeyCartSession, sessionID)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return &domain.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		r.logger.Error("Failed to get cart", zap.Error(err), zap.String("session_id", sessionID))
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// A corrupt cart record is unrecoverable; start the session over.
		r.logger.Warn("Discarding corrupt cart record", zap.Error(err), zap.String("session_id", sessionID))
		return &domain.Cart{SessionID: sessionID}, nil
	}
	cart.SessionID = sessionID
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now()

	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(KeyCartSession, cart.SessionID)
	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save cart", zap.Error(err), zap.String("session_id", cart.SessionID))
		return err
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(KeyCartSession, sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete cart", zap.Error(err), zap.String("session_id", sessionID))
		return err
	}
	return nil
}
