package finance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"siasistenApi/internal/siasisten"
)

const defaultRedisTimeout = 5 * time.Second

// RedisStore keeps each cached month as one JSON array.
// Key format: finance:<username>:<year>:<month>
type RedisStore struct {
	client *redis.Client
}

type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// ConnectRedis initialises a Redis client and validates connectivity with a
// ping.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(client), nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key Key) ([]siasisten.FinanceRecord, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, cacheError("get", key, err)
	}
	var rows []siasisten.FinanceRecord
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, cacheError("get", key, err)
	}
	return rows, nil
}

func (s *RedisStore) Replace(ctx context.Context, key Key, rows []siasisten.FinanceRecord) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return cacheError("replace", key, err)
	}
	if err := s.client.Set(ctx, s.key(key), raw, 0).Err(); err != nil {
		return cacheError("replace", key, err)
	}
	return nil
}

func (s *RedisStore) key(k Key) string {
	return fmt.Sprintf("finance:%s:%d:%d", k.Username, k.Year, k.Month)
}
