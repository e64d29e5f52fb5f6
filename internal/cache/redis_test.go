package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fakeRedisClient 實作 redisClient
type fakeRedisClient struct {
	FakeCache
	pingErr error
}

func (f *fakeRedisClient) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.pingErr)
}

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(opt *redis.Options) redisClient {
			return redis.NewClient(opt)
		}
	})

	t.Run("ping error", func(t *testing.T) {
		redisNewClient = func(*redis.Options) redisClient {
			return &fakeRedisClient{pingErr: errors.New("conn refused")}
		}
		_, err := NewRedisClient("localhost:6379", "", 0)
		require.ErrorContains(t, err, "conn refused")
	})

	t.Run("ok", func(t *testing.T) {
		var gotOpt *redis.Options
		fake := &fakeRedisClient{}
		fake.GetFn = func(_ context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("v", nil)
		}
		fake.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		}
		redisNewClient = func(opt *redis.Options) redisClient {
			gotOpt = opt
			return fake
		}

		client, err := NewRedisClient("redis.internal:6380", "pw", 2)
		require.NoError(t, err)
		require.Equal(t, "redis.internal:6380", gotOpt.Addr)
		require.Equal(t, "pw", gotOpt.Password)
		require.Equal(t, 2, gotOpt.DB)

		val, err := client.Get(context.Background(), "k").Result()
		require.NoError(t, err)
		require.Equal(t, "v", val)
	})
}
