// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package social

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rmonteiro/meliponario/internal/platform/constants"
	"github.com/rmonteiro/meliponario/pkg/uuidv7"
)

// # Redis Fallback Repository

// redisRepository implements the [Repository] interface over Redis. It is
// the durable landing zone for mutations accepted while the PostgreSQL
// backend is absent or unreachable: favorites live in per-user sets,
// verification marks in plain keys, and ratings in per-breeder lists of
// JSON documents.
//
// It intentionally has no expiry — offline mutations must survive process
// restarts until a future reconciliation job replays them.
type redisRepository struct {
	client *redis.Client
}

// NewRedisRepository constructs the offline fallback social store.
func NewRedisRepository(client *redis.Client) Repository {
	return &redisRepository{client: client}
}

// # Favorites

func (repository *redisRepository) AddFavorite(context context.Context, userID, breederID string) error {
	key := constants.RedisPrefixFavorites + userID

	if err := repository.client.SAdd(context, key, breederID).Err(); err != nil {
		return fmt.Errorf("redis_favorite_add_failed: %w", err)
	}
	return nil
}

func (repository *redisRepository) RemoveFavorite(context context.Context, userID, breederID string) error {
	key := constants.RedisPrefixFavorites + userID

	if err := repository.client.SRem(context, key, breederID).Err(); err != nil {
		return fmt.Errorf("redis_favorite_remove_failed: %w", err)
	}
	return nil
}

func (repository *redisRepository) ListFavorites(context context.Context, userID string) ([]string, error) {
	key := constants.RedisPrefixFavorites + userID

	members, err := repository.client.SMembers(context, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_favorite_list_failed: %w", err)
	}
	return members, nil
}

// # Verification

func (repository *redisRepository) SetVerification(context context.Context, breederID string, verified bool) error {
	key := constants.RedisPrefixVerify + breederID

	value := "0"
	if verified {
		value = "1"
	}
	if err := repository.client.Set(context, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis_verification_set_failed: %w", err)
	}
	return nil
}

// # Ratings

func (repository *redisRepository) InsertRating(context context.Context, rating *Rating) error {
	key := constants.RedisPrefixRatings + rating.BreederID

	if rating.ID == "" {
		rating.ID = uuidv7.Must()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("redis_rating_encode_failed: %w", err)
	}
	if err := repository.client.LPush(context, key, payload).Err(); err != nil {
		return fmt.Errorf("redis_rating_push_failed: %w", err)
	}
	return nil
}

func (repository *redisRepository) ListRatings(context context.Context, breederID string) ([]*Rating, error) {
	key := constants.RedisPrefixRatings + breederID

	entries, err := repository.client.LRange(context, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_rating_list_failed: %w", err)
	}

	ratings := make([]*Rating, 0, len(entries))
	for _, entry := range entries {
		rating := &Rating{}
		if err := json.Unmarshal([]byte(entry), rating); err != nil {
			return nil, fmt.Errorf("redis_rating_decode_failed: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

// RefreshRatingAggregate is a no-op in the fallback store: the journal
// holds raw ratings only, and the denormalized aggregate lives on the
// remote breeder row that is unreachable by definition here.
func (repository *redisRepository) RefreshRatingAggregate(context.Context, string) error {
	return nil
}
