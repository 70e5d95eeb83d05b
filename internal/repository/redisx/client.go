package redisx

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Cart session key: cart:sess:{session_id} -> JSON cart document
const KeyCartSession = "cart:sess:%s"

// New creates a Redis client for cart storage
func New(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return r
}
