// Package csrf implements the anti-forgery guard for the form routes.
//
// Tokens are keyed in an in-memory store with a TTL instead of a single
// process-wide slot, so concurrent clients fetching tokens cannot invalidate
// each other. A token is valid for one successful check and is removed when
// consumed.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"webnebula-api/internal/pkg/clock"
	"webnebula-api/internal/pkg/errs"
)

const tokenBytes = 32

// Guard checks request provenance and manages issued tokens.
type Guard struct {
	allowedOrigins []string
	ttl            time.Duration
	clock          clock.Clock

	mu     sync.Mutex
	issued map[string]time.Time // token -> issuance time
}

func NewGuard(allowedOrigins []string, ttl time.Duration, clk clock.Clock) *Guard {
	return &Guard{
		allowedOrigins: allowedOrigins,
		ttl:            ttl,
		clock:          clk,
		issued:         make(map[string]time.Time),
	}
}

// CheckOrigin verifies the Origin/Referer headers of a token-issuing request.
// Origin is optional but must match the allow-list when present; Referer is
// mandatory and must be prefixed by an allowed origin.
func (g *Guard) CheckOrigin(origin, referer string) error {
	if origin != "" && !g.originAllowed(origin) {
		return errs.ErrOriginRejected
	}
	if referer == "" {
		return errs.ErrRefererRejected
	}
	for _, allowed := range g.allowedOrigins {
		if strings.HasPrefix(referer, allowed) {
			return nil
		}
	}
	return errs.ErrRefererRejected
}

func (g *Guard) originAllowed(origin string) bool {
	for _, allowed := range g.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

// Issue generates a new token and records it. Expired entries are swept on
// the way in so the map does not grow without bound.
func (g *Guard) Issue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate csrf token")
	}
	token := hex.EncodeToString(buf)

	now := g.clock.Now()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sweepLocked(now)
	g.issued[token] = now
	return token, nil
}

// Consume checks a caller-presented token and removes it on success.
// Unknown, expired, or empty tokens are rejected.
func (g *Guard) Consume(token string) bool {
	if token == "" {
		return false
	}

	now := g.clock.Now()
	g.mu.Lock()
	defer g.mu.Unlock()

	for issued, at := range g.issued {
		if now.Sub(at) > g.ttl {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(issued), []byte(token)) == 1 {
			delete(g.issued, issued)
			return true
		}
	}
	g.sweepLocked(now)
	return false
}

func (g *Guard) sweepLocked(now time.Time) {
	for token, at := range g.issued {
		if now.Sub(at) > g.ttl {
			delete(g.issued, token)
		}
	}
}
