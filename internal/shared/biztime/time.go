// Package biztime centralises wall-clock access. All storage and transport
// use UTC.
package biztime

import (
	"sync"
	"time"
)

var (
	nowFunc = time.Now
	nowMu   sync.RWMutex
)

// NowUTC returns the current time in UTC, truncated to microseconds so that
// values survive a round trip through DATETIME(6) columns unchanged.
func NowUTC() time.Time {
	nowMu.RLock()
	f := nowFunc
	nowMu.RUnlock()
	return f().UTC().Truncate(time.Microsecond)
}

// SetNowFunc overrides the clock and returns a function restoring the previous one.
// Intended for tests.
func SetNowFunc(f func() time.Time) (restore func()) {
	nowMu.Lock()
	prev := nowFunc
	nowFunc = f
	nowMu.Unlock()
	return func() {
		nowMu.Lock()
		nowFunc = prev
		nowMu.Unlock()
	}
}

// AddDays adds whole days to t.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
