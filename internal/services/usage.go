package services

import (
	"sync"
	"time"

	"insightd/internal/models"
)

// breakerCooldown is how long the quota breaker stays open before a
// request is allowed to probe the remote API again.
const breakerCooldown = time.Hour

// UsageTracker gates remote inference calls and records their
// outcomes. Requests are served concurrently, so every read and
// mutation goes through the mutex.
type UsageTracker struct {
	mu       sync.Mutex
	stats    models.UsageStats
	cooldown time.Duration
	now      func() time.Time
}

func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		cooldown: breakerCooldown,
		now:      time.Now,
	}
}

// ShouldAttemptRemote reports whether the next request may call the
// remote API. An open breaker self-heals once the cooldown has elapsed
// since the last attempt.
func (t *UsageTracker) ShouldAttemptRemote() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.stats.QuotaExceeded {
		return true
	}
	if t.now().Sub(t.stats.LastRequestTime) > t.cooldown {
		t.stats.QuotaExceeded = false
		t.stats.FallbackMode = false
		return true
	}
	return false
}

// RecordAttempt notes that a remote call is about to be issued.
func (t *UsageTracker) RecordAttempt() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.RequestsToday++
	t.stats.LastRequestTime = t.now()
}

// RecordRateLimited opens the breaker after an upstream 429.
func (t *UsageTracker) RecordRateLimited() {
	t.openBreaker()
}

// RecordQuotaExceeded opens the breaker after an upstream 403.
func (t *UsageTracker) RecordQuotaExceeded() {
	t.openBreaker()
}

func (t *UsageTracker) openBreaker() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.QuotaExceeded = true
	t.stats.FallbackMode = true
}

// RecordError counts a failed remote attempt.
func (t *UsageTracker) RecordError() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.ErrorsToday++
}

// Snapshot returns a read-only copy for the status endpoint.
func (t *UsageTracker) Snapshot() models.UsageStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
