// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// TokenStore is the slice of the content store the gate needs: the admin
// token hash lives on the singleton profile row.
type TokenStore interface {
	GetAdminTokenHash(ctx context.Context) (string, error)
	UpdateAdminTokenHash(ctx context.Context, hash string) error
}

type Service struct {
	store TokenStore
	cache *tokenCache
	now   func() time.Time
}

func NewService(store TokenStore, cacheTTL time.Duration) *Service {
	return &Service{
		store: store,
		cache: newTokenCache(cacheTTL),
		now:   time.Now,
	}
}

// Verify checks a presented bearer token against the stored credential.
// Returns core.ErrTokenNotConfigured when no token has ever been set and
// core.ErrForbidden on mismatch.
func (s *Service) Verify(ctx context.Context, token string) error {
	hash, err := s.tokenHash(ctx)
	if err != nil {
		return err
	}

	if hash == "" {
		return core.ErrTokenNotConfigured
	}

	fp := core.TokenFingerprint(token)
	if s.cache.isVerified(fp, s.now()) {
		return nil
	}

	ok, err := core.VerifyAdminToken(token, hash)
	if err != nil {
		return fmt.Errorf("verify admin token: %w", err)
	}

	if !ok {
		return core.ErrForbidden
	}

	s.cache.markVerified(fp)
	return nil
}

func (s *Service) Configured(ctx context.Context) (bool, error) {
	hash, err := s.tokenHash(ctx)
	if err != nil {
		return false, err
	}
	return hash != "", nil
}

// SetToken hashes and stores a new admin token, then invalidates the cache
// so the rotation takes effect on the next request.
func (s *Service) SetToken(ctx context.Context, token string) error {
	hash, err := core.HashAdminToken(token)
	if err != nil {
		return fmt.Errorf("hash admin token: %w", err)
	}

	if err := s.store.UpdateAdminTokenHash(ctx, hash); err != nil {
		return fmt.Errorf("store admin token: %w", err)
	}

	s.cache.Invalidate()
	return nil
}

// Bootstrap seeds the admin token from configuration when the database has
// none. Reports whether a token was seeded.
func (s *Service) Bootstrap(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	configured, err := s.Configured(ctx)
	if err != nil {
		return false, err
	}
	if configured {
		return false, nil
	}

	if err := s.SetToken(ctx, token); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) tokenHash(ctx context.Context) (string, error) {
	now := s.now()
	if hash, ok := s.cache.get(now); ok {
		return hash, nil
	}

	hash, err := s.store.GetAdminTokenHash(ctx)
	if err != nil {
		return "", fmt.Errorf("get admin token: %w", err)
	}

	s.cache.set(hash, now)
	return hash, nil
}
