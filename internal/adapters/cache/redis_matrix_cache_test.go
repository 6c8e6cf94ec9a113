package cache

import (
	"context"
	"delivery-plan-solver/internal/domain"
	"delivery-plan-solver/internal/solver"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// A three-node matrix with an unreachable node, so +Inf cells must survive
// the cache round trip.
func cachedMatrix() *solver.DistanceMatrix {
	return solver.NewDistanceMatrix(3, map[domain.EdgeKey]float64{
		{From: 0, To: 1}: 2.5, {From: 1, To: 0}: 2.5,
	})
}

func matricesEqual(t *testing.T, got, want *solver.DistanceMatrix) {
	t.Helper()
	if got.Size() != want.Size() {
		t.Fatalf("size = %d, want %d", got.Size(), want.Size())
	}
	for i := 0; i < want.Size(); i++ {
		for j := 0; j < want.Size(); j++ {
			if got.Between(i, j) != want.Between(i, j) {
				t.Errorf("Between(%d,%d) = %g, want %g", i, j, got.Between(i, j), want.Between(i, j))
			}
		}
	}
}

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisMatrixCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisMatrixCache(client, ttl), mr
}

func TestRedisMatrixCacheRoundTrip(t *testing.T) {
	c, _ := newRedisCache(t, time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "fp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if ok {
		t.Fatal("expected miss on empty cache")
	}

	src := cachedMatrix()
	if err := c.Put(ctx, "fp", src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "fp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after Put")
	}
	matricesEqual(t, got, src)
}

func TestRedisMatrixCacheEntriesExpire(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "fp", cachedMatrix()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "fp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestRedisMatrixCacheCorruptValue(t *testing.T) {
	c, mr := newRedisCache(t, time.Hour)

	if err := mr.Set(matrixKey("fp"), "garbage"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := c.Get(context.Background(), "fp"); err == nil {
		t.Fatal("expected decode error for corrupt value")
	}
}
