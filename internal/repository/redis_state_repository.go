package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

type RedisStateRepository struct {
	client *redis.Client
	key    string
}

func NewRedisStateRepository(client *redis.Client, key string) *RedisStateRepository {
	return &RedisStateRepository{client: client, key: key}
}

func (r *RedisStateRepository) Load(ctx context.Context) (*models.State, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return decodeState(raw)
}

// Save overwrites the key with no expiry.
func (r *RedisStateRepository) Save(ctx context.Context, state *models.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
