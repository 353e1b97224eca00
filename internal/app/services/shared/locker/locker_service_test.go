package locker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepo struct {
	values map[string]string
	err    error
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{values: make(map[string]string)}
}

func (f *fakeRedisRepo) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

func (f *fakeRedisRepo) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = fmt.Sprintf("%q", value)
	return nil
}

func (f *fakeRedisRepo) Delete(ctx context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepo) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = fmt.Sprintf("%q", value)
	return true, nil
}

func TestLockService(t *testing.T) {
	t.Run("Acquire And Release", func(t *testing.T) {
		repo := newFakeRedisRepo()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, lockValue, err := service.TryLock(context.Background(), "settlement:order:abc", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		err = service.Unlock(context.Background(), "settlement:order:abc", lockValue)
		assert.NoError(t, err)
		assert.Empty(t, repo.values)
	})

	t.Run("Second Acquire Fails While Held", func(t *testing.T) {
		repo := newFakeRedisRepo()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, _, err := service.TryLock(context.Background(), "settlement:order:abc", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)

		acquired, _, err = service.TryLock(context.Background(), "settlement:order:abc", time.Minute)
		assert.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("Unlock With Wrong Value Rejected", func(t *testing.T) {
		repo := newFakeRedisRepo()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		_, lockValue, err := service.TryLock(context.Background(), "settlement:order:abc", time.Minute)
		assert.NoError(t, err)

		err = service.Unlock(context.Background(), "settlement:order:abc", "not-the-owner")
		assert.Error(t, err)

		// The rightful owner can still release it.
		err = service.Unlock(context.Background(), "settlement:order:abc", lockValue)
		assert.NoError(t, err)
	})

	t.Run("Unlock After Expiry Is A No Op", func(t *testing.T) {
		repo := newFakeRedisRepo()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		err := service.Unlock(context.Background(), "settlement:order:gone", "stale-value")
		assert.NoError(t, err)
	})
}
