// Package biztime provides business timezone helpers. Storage and transport
// use UTC; the business timezone only decides calendar boundaries, which
// matters once a year when the job-ID sequence resets.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "Asia/Bangkok"

var (
	bizLocation *time.Location
	mu          sync.RWMutex
)

// Init sets the business timezone. Should be called once at startup.
// An empty tz selects the default.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, defaulting to UTC before Init.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// CurrentYear returns the calendar year in the business timezone.
func CurrentYear() int {
	return time.Now().In(Location()).Year()
}
