// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type fakeTokenStore struct {
	hash  string
	reads int
	err   error
}

func (f *fakeTokenStore) GetAdminTokenHash(ctx context.Context) (string, error) {
	f.reads++
	return f.hash, f.err
}

func (f *fakeTokenStore) UpdateAdminTokenHash(
	ctx context.Context,
	hash string,
) error {
	if f.err != nil {
		return f.err
	}
	f.hash = hash
	return nil
}

func newTestService(store *fakeTokenStore, ttl time.Duration) *Service {
	return NewService(store, ttl)
}

func TestVerifyNotConfigured(t *testing.T) {
	svc := newTestService(&fakeTokenStore{}, time.Minute)

	err := svc.Verify(context.Background(), "anything")
	assert.ErrorIs(t, err, core.ErrTokenNotConfigured)
}

func TestVerifyAcceptsCorrectToken(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)

	require.NoError(t, svc.SetToken(context.Background(), "super-secret"))

	assert.NoError(t, svc.Verify(context.Background(), "super-secret"))
}

func TestVerifyRejectsWrongToken(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)

	require.NoError(t, svc.SetToken(context.Background(), "super-secret"))

	err := svc.Verify(context.Background(), "wrong")
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestVerifyCachesHashWithinTTL(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)
	require.NoError(t, svc.SetToken(context.Background(), "super-secret"))

	store.reads = 0
	for range 5 {
		require.NoError(t, svc.Verify(context.Background(), "super-secret"))
	}

	assert.Equal(t, 1, store.reads, "hash should be fetched once per TTL")
}

func TestVerifyRefetchesAfterTTL(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)
	require.NoError(t, svc.SetToken(context.Background(), "super-secret"))

	now := time.Now()
	svc.now = func() time.Time { return now }
	require.NoError(t, svc.Verify(context.Background(), "super-secret"))

	store.reads = 0
	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	require.NoError(t, svc.Verify(context.Background(), "super-secret"))

	assert.Equal(t, 1, store.reads, "expired cache should hit the store again")
}

func TestSetTokenInvalidatesCache(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)

	require.NoError(t, svc.SetToken(context.Background(), "first"))
	require.NoError(t, svc.Verify(context.Background(), "first"))

	require.NoError(t, svc.SetToken(context.Background(), "second"))

	assert.ErrorIs(
		t,
		svc.Verify(context.Background(), "first"),
		core.ErrForbidden,
	)
	assert.NoError(t, svc.Verify(context.Background(), "second"))
}

func TestBootstrapSeedsOnlyWhenUnconfigured(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)

	seeded, err := svc.Bootstrap(context.Background(), "env-token")
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = svc.Bootstrap(context.Background(), "other-token")
	require.NoError(t, err)
	assert.False(t, seeded, "existing credential must not be overwritten")

	assert.NoError(t, svc.Verify(context.Background(), "env-token"))
}

func TestBootstrapNoopWithEmptyToken(t *testing.T) {
	store := &fakeTokenStore{}
	svc := newTestService(store, time.Minute)

	seeded, err := svc.Bootstrap(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, 0, store.reads)
}

func TestVerifyPropagatesStoreError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newTestService(&fakeTokenStore{err: boom}, time.Minute)

	err := svc.Verify(context.Background(), "anything")
	assert.ErrorIs(t, err, boom)
}
