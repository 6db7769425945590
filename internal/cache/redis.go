package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlanCache stores rendered meal and workout days per user.
type PlanCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	InvalidateUser(ctx context.Context, userID uint) error
}

const daysPerWeek = 7

func MealPlanKey(userID uint, day int) string {
	return fmt.Sprintf("planova:mealplan:%d:%d", userID, day)
}

func WorkoutPlanKey(userID uint, day int) string {
	return fmt.Sprintf("planova:workout:%d:%d", userID, day)
}

// userKeys lists every day key a user can own.
func userKeys(userID uint) []string {
	keys := make([]string, 0, 2*daysPerWeek)
	for day := 1; day <= daysPerWeek; day++ {
		keys = append(keys, MealPlanKey(userID, day), WorkoutPlanKey(userID, day))
	}
	return keys
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(redisURL string, ttl time.Duration) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Set(ctx context.Context, key string, value interface{}) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store %s in Redis: %w", key, err)
	}
	return nil
}

// Get decodes the cached value into dest. A missing key is not an error.
func (r *RedisClient) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from Redis: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisClient) InvalidateUser(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, userKeys(userID)...).Err()
}

func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}

// NoopCache is used when no Redis is configured. Every read misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, interface{}) error         { return nil }
func (NoopCache) InvalidateUser(context.Context, uint) error             { return nil }
