package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss indica chave ausente no backend.
var ErrMiss = errors.New("cache: miss")

// Backend é o k/v mínimo que a camada de cache precisa. A implementação
// de produção é Redis; os testes usam um mapa em memória.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEX(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type redisBackend struct {
	client *redis.Client
}

func NewRedisBackend(addr, password string) Backend {
	return &redisBackend{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (b *redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *redisBackend) SetEX(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.client.SetEX(ctx, key, value, ttl).Err()
}

func (b *redisBackend) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	// delete em lote via pipeline, como o invalidate por prefixo legado
	pipe := b.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (b *redisBackend) Keys(ctx context.Context, pattern string) ([]string, error) {
	return b.client.Keys(ctx, pattern).Result()
}
