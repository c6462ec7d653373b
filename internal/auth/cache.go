// AngelaMos | 2026
// cache.go

package auth

import (
	"sync"
	"time"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// tokenCache holds the stored admin token hash for a short TTL so the gate
// does not hit the database on every request. It also memoizes the
// fingerprint of the last token that verified against that hash, so
// steady-state requests cost one constant-time compare instead of an argon2
// derivation.
//
// The cache is process-local. In a multi-instance deployment a rotation on
// one instance leaves the others serving the old token for up to one TTL;
// acceptable for a single-admin tool and documented as a known limitation.
type tokenCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	hash       string
	loaded     bool
	fetchedAt  time.Time
	verifiedFP string
}

func newTokenCache(ttl time.Duration) *tokenCache {
	return &tokenCache{ttl: ttl}
}

func (c *tokenCache) get(now time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded || now.Sub(c.fetchedAt) >= c.ttl {
		return "", false
	}
	return c.hash, true
}

func (c *tokenCache) set(hash string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hash != c.hash {
		c.verifiedFP = ""
	}
	c.hash = hash
	c.loaded = true
	c.fetchedAt = now
}

func (c *tokenCache) isVerified(fp string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded || now.Sub(c.fetchedAt) >= c.ttl || c.verifiedFP == "" {
		return false
	}
	return core.CompareFingerprints(fp, c.verifiedFP)
}

func (c *tokenCache) markVerified(fp string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verifiedFP = fp
}

// Invalidate must be called after every token write so the new value takes
// effect immediately.
func (c *tokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hash = ""
	c.loaded = false
	c.verifiedFP = ""
	c.fetchedAt = time.Time{}
}
