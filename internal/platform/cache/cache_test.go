package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, "test", time.Minute)
}

func TestFetchJSONCachesLoaderResult(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	tenant := uuid.New()

	key, err := c.Key(ctx, tenant, "statement", "p1")
	require.NoError(t, err)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return map[string]float64{"closing": 600}, nil
	}

	var first map[string]float64
	require.NoError(t, c.FetchJSON(ctx, key, &first, loader))
	var second map[string]float64
	require.NoError(t, c.FetchJSON(ctx, key, &second, loader))

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 600.0, second["closing"])
}

func TestBumpInvalidatesTenantOnly(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	tenantA := uuid.New()
	tenantB := uuid.New()

	keyA1, err := c.Key(ctx, tenantA, "statement")
	require.NoError(t, err)
	keyB1, err := c.Key(ctx, tenantB, "statement")
	require.NoError(t, err)

	require.NoError(t, c.Bump(ctx, tenantA))

	keyA2, err := c.Key(ctx, tenantA, "statement")
	require.NoError(t, err)
	keyB2, err := c.Key(ctx, tenantB, "statement")
	require.NoError(t, err)

	assert.NotEqual(t, keyA1, keyA2)
	assert.Equal(t, keyB1, keyB2)
}

func TestNilCachePassesThrough(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	key, err := c.Key(ctx, uuid.New(), "statement")
	require.NoError(t, err)

	var out map[string]int
	require.NoError(t, c.FetchJSON(ctx, key, &out, func(context.Context) (any, error) {
		return map[string]int{"n": 1}, nil
	}))
	assert.Equal(t, 1, out["n"])
	require.NoError(t, c.Bump(ctx, uuid.New()))
}
