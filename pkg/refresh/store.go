package refresh

import "time"

// TimeStore persists the time of the last successful header refresh.
type TimeStore interface {
	LastUpdated(key string) (time.Time, bool)
	SetLastUpdated(key string, at time.Time) error
}
