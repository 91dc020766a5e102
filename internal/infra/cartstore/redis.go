// Package cartstore keeps per-user shopping carts in Redis with a TTL, so
// abandoned carts eventually expire on their own.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"extinguard/internal/domain/cart"
	"extinguard/internal/infra"
)

const keyPrefix = "fx:cart:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// Get loads the user's cart. A missing key means an empty cart; a value
// that no longer parses is discarded and treated the same way.
func (s *Store) Get(ctx context.Context, userID int64) (*cart.Cart, error) {
	val, err := s.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err)
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		slog.Warn("discarding corrupt cart", "user_id", userID, "error", err.Error())
		if delErr := s.client.Del(ctx, cartKey(userID)).Err(); delErr != nil {
			return nil, infra.WrapRepoErr("failed to discard corrupt cart", delErr)
		}
		return cart.New(), nil
	}
	if c.Items == nil {
		c.Items = []cart.Item{}
	}
	return &c, nil
}

// Save writes the cart back, refreshing the TTL.
func (s *Store) Save(ctx context.Context, userID int64, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
