package ratelimit

import (
	"sync"
	"time"
)

// Service policy: 5 admitted requests per tenant per trailing minute.
// Fixed globally, not per-tenant tunable.
const (
	Rate   = 5
	Window = 60 * time.Second
)

// Limiter is a sliding-window admission controller keyed by tenant.
// Each tenant gets its own bucket with its own lock so concurrent
// requests for different tenants never contend. Buckets are created
// on first use and kept for the process lifetime; stale timestamps
// are pruned lazily on each check, there is no background sweep.
type Limiter struct {
	rate   int
	window time.Duration

	mu      sync.RWMutex
	tenants map[string]*bucket
}

type bucket struct {
	mu     sync.Mutex
	stamps []time.Time
}

func New(rate int, window time.Duration) *Limiter {
	return &Limiter{
		rate:    rate,
		window:  window,
		tenants: make(map[string]*bucket),
	}
}

// Allow reports whether a request at now is admitted. A timestamp is
// expired once now-t >= window, so an entry exactly one window old no
// longer counts. Rejected requests are not recorded.
func (l *Limiter) Allow(tenantID string, now time.Time) bool {
	b := l.bucket(tenantID)

	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.stamps[:0]
	for _, t := range b.stamps {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	b.stamps = kept

	if len(b.stamps) >= l.rate {
		return false
	}
	b.stamps = append(b.stamps, now)
	return true
}

func (l *Limiter) bucket(tenantID string) *bucket {
	l.mu.RLock()
	b := l.tenants[tenantID]
	l.mu.RUnlock()
	if b != nil {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b = l.tenants[tenantID]; b == nil {
		b = &bucket{}
		l.tenants[tenantID] = b
	}
	return b
}
