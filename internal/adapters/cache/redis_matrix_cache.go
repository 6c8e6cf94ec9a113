package cache

import (
	"context"
	"delivery-plan-solver/internal/platform/obs"
	"delivery-plan-solver/internal/solver"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMatrixCache shares computed distance matrices across instances
// through Redis, keyed by case network fingerprint. Entries expire after the
// configured TTL; zero keeps them until evicted.
type RedisMatrixCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMatrixCache(client *redis.Client, ttl time.Duration) *RedisMatrixCache {
	return &RedisMatrixCache{Client: client, TTL: ttl}
}

func matrixKey(fingerprint string) string { return "matrix:" + fingerprint }

// Look up a cached matrix by fingerprint.
func (r *RedisMatrixCache) Get(ctx context.Context, fingerprint string) (_ *solver.DistanceMatrix, _ bool, err error) {
	defer obs.Time(ctx, "matrix.cache.get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("matrix cache: redis client is nil")
	}

	data, err := r.Client.Get(ctx, matrixKey(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get matrix cache: redis get: %w", err)
	}

	m := new(solver.DistanceMatrix)
	if err = m.UnmarshalBinary(data); err != nil {
		return nil, false, fmt.Errorf("get matrix cache: decode value: %w", err)
	}
	return m, true, nil
}

// Store a matrix under the fingerprint, replacing any previous entry.
func (r *RedisMatrixCache) Put(ctx context.Context, fingerprint string, m *solver.DistanceMatrix) (err error) {
	defer obs.Time(ctx, "matrix.cache.put")(&err)

	if r.Client == nil {
		return errors.New("matrix cache: redis client is nil")
	}
	if m == nil {
		return errors.New("put matrix cache: matrix is nil")
	}

	data, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("put matrix cache: encode matrix: %w", err)
	}

	if err := r.Client.Set(ctx, matrixKey(fingerprint), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("put matrix cache: redis set: %w", err)
	}
	return nil
}
