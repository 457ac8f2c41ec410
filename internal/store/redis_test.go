package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps hashes in memory.
type fakeRedis struct {
	mu     sync.Mutex
	hashes map[string]map[string]string
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{hashes: map[string]map[string]string{}}
}

func (f *fakeRedis) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]string{}
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return redis.NewMapStringStringResult(out, f.err)
}

func (f *fakeRedis) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	h, ok := f.hashes[key]
	if !ok {
		h = map[string]string{}
		f.hashes[key] = h
	}
	for i := 0; i+1 < len(values); i += 2 {
		h[fmt.Sprint(values[i])] = fmt.Sprint(values[i+1])
	}
	return redis.NewIntResult(int64(len(values)/2), nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.hashes[k]; ok {
			delete(f.hashes, k)
			n++
		}
	}
	return redis.NewIntResult(n, f.err)
}

func (f *fakeRedis) Close() error { return nil }

func TestRedisRepo(t *testing.T) {
	exerciseRepo(t, &Redis{client: newFakeRedis()})
}

func TestRedisRepoStoresDocumentField(t *testing.T) {
	fake := newFakeRedis()
	r := &Redis{client: fake}
	require.NoError(t, r.Save(context.Background(), &Record{Key: "vocabstreak:progress", Version: 1, Data: []byte(`{"version":1}`)}))

	assert.Equal(t, `{"version":1}`, fake.hashes["vocabstreak:progress"]["data"])
	assert.Equal(t, "1", fake.hashes["vocabstreak:progress"]["version"])
}

func TestRedisRepoErrors(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection refused")
	r := &Redis{client: fake}

	_, err := r.Load(context.Background(), "k")
	assert.ErrorContains(t, err, "connection refused")
	assert.Error(t, r.Save(context.Background(), &Record{Key: "k"}))
}
