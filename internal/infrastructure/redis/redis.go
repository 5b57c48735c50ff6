// Package redis implementa Locker (bsm/redislock) e IdempotencyStore (SETNX)
// compartidos entre instancias de la API.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
)

const (
	lockKeyPrefix        = "antorcha:lock:"
	idempotencyKeyPrefix = "antorcha:idem:"
	idempotencyKeyTTL    = 24 * time.Hour
	lockTTL              = 30 * time.Second
)

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Locker lock distribuido por clave.
type Locker struct {
	locker *redislock.Client
	retry  redislock.RetryStrategy
}

// NewLocker crea el locker; reintenta cada 50ms hasta ~5s.
func NewLocker(client *goredis.Client) *Locker {
	return &Locker{
		locker: redislock.New(client),
		retry:  redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 100),
	}
}

// Lock obtiene el lock de key. Si no se obtiene a tiempo devuelve domain.ErrConflict.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	lock, err := l.locker.Obtain(ctx, lockKeyPrefix+key, lockTTL, &redislock.Options{RetryStrategy: l.retry})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s en uso", domain.ErrConflict, key)
	}
	if err != nil {
		return nil, fmt.Errorf("obtener lock %s: %w", key, err)
	}
	return func() {
		_ = lock.Release(context.WithoutCancel(ctx))
	}, nil
}

// Idempotency claves de idempotencia con SETNX y TTL de 24h.
type Idempotency struct {
	client *goredis.Client
}

func NewIdempotency(client *goredis.Client) *Idempotency {
	return &Idempotency{client: client}
}

func (s *Idempotency) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (s *Idempotency) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}
