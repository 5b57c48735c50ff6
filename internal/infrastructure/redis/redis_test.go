package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/antorcha-inventario/internal/domain"
	"github.com/jhoicas/antorcha-inventario/pkg/config"
)

func getRedisClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	client, err := NewClient(ctx, config.RedisConfig{Addr: addr})
	if err != nil {
		t.Skipf("Redis no disponible: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestIdempotency_SetNX(t *testing.T) {
	client := getRedisClient(t)
	s := NewIdempotency(client)
	ctx := context.Background()
	key := "test-" + uuid.NewString()

	ok, err := s.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Reserve(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, idempotencyKeyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 23*time.Hour)

	require.NoError(t, s.Release(ctx, key))
	ok, err = s.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	_ = s.Release(ctx, key)
}

func TestLocker_SegundoLockEsperaOFalla(t *testing.T) {
	client := getRedisClient(t)
	l := NewLocker(client)
	ctx := context.Background()
	key := "producto:" + uuid.NewString()

	release, err := l.Lock(ctx, key)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()
	_, err = l.Lock(short, key)
	require.Error(t, err)

	release()
	again, err := l.Lock(ctx, key)
	require.NoError(t, err)
	again()
}

func TestLocker_NoObtenidoEsConflicto(t *testing.T) {
	client := getRedisClient(t)
	l := NewLocker(client)
	l.retry = redislock.NoRetry()
	ctx := context.Background()
	key := "producto:" + uuid.NewString()

	release, err := l.Lock(ctx, key)
	require.NoError(t, err)
	defer release()

	_, err = l.Lock(ctx, key)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
