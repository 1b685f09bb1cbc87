package services

import (
	"testing"
	"time"
)

func newTestTracker(start time.Time) (*UsageTracker, *time.Time) {
	current := start
	tracker := NewUsageTracker()
	tracker.now = func() time.Time { return current }
	return tracker, &current
}

func TestShouldAttemptRemoteDefaultsOpen(t *testing.T) {
	t.Parallel()

	tracker, _ := newTestTracker(time.Now())
	if !tracker.ShouldAttemptRemote() {
		t.Fatal("new tracker should allow remote attempts")
	}
}

func TestBreakerBlocksWithinCooldown(t *testing.T) {
	t.Parallel()

	tracker, clock := newTestTracker(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	tracker.RecordAttempt()
	tracker.RecordQuotaExceeded()

	*clock = clock.Add(30 * time.Minute)
	if tracker.ShouldAttemptRemote() {
		t.Fatal("breaker should stay open 30 minutes after quota exceeded")
	}

	snapshot := tracker.Snapshot()
	if !snapshot.QuotaExceeded || !snapshot.FallbackMode {
		t.Fatalf("snapshot = %+v, want quotaExceeded and fallbackMode true", snapshot)
	}
}

func TestBreakerSelfHealsAfterCooldown(t *testing.T) {
	t.Parallel()

	tracker, clock := newTestTracker(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	tracker.RecordAttempt()
	tracker.RecordRateLimited()

	*clock = clock.Add(time.Hour + time.Minute)
	if !tracker.ShouldAttemptRemote() {
		t.Fatal("breaker should clear after the cooldown elapses")
	}

	snapshot := tracker.Snapshot()
	if snapshot.QuotaExceeded {
		t.Fatal("quotaExceeded should be cleared after self-heal")
	}
	if snapshot.FallbackMode {
		t.Fatal("fallbackMode should be cleared after self-heal")
	}
}

func TestCountersAccumulate(t *testing.T) {
	t.Parallel()

	tracker, clock := newTestTracker(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	tracker.RecordAttempt()
	tracker.RecordError()
	*clock = clock.Add(5 * time.Minute)
	tracker.RecordAttempt()

	snapshot := tracker.Snapshot()
	if snapshot.RequestsToday != 2 {
		t.Fatalf("RequestsToday = %d, want 2", snapshot.RequestsToday)
	}
	if snapshot.ErrorsToday != 1 {
		t.Fatalf("ErrorsToday = %d, want 1", snapshot.ErrorsToday)
	}
	if !snapshot.LastRequestTime.Equal(*clock) {
		t.Fatalf("LastRequestTime = %v, want %v", snapshot.LastRequestTime, *clock)
	}
}
