package domain

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// AvailabilityWindow a recurring weekly open window of a provider.
// Windows are never mutated in place: changes are delete + recreate
type AvailabilityWindow struct {
	ID          int64
	ProviderID  int64
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsRecurring bool
	CreatedAt   time.Time
}

// Overlaps reports whether two windows on the same day overlap.
// Intervals are half-open [start, end): touching endpoints do not overlap
func (w *AvailabilityWindow) Overlaps(other *AvailabilityWindow) bool {
	return w.StartTime.IsBefore(other.EndTime) && w.EndTime.IsAfter(other.StartTime)
}

// Covers reports whether the [from, to) time-of-day interval lies fully
// inside the window
func (w *AvailabilityWindow) Covers(from, to types.TimeString) bool {
	return !from.IsBefore(w.StartTime) && !to.IsAfter(w.EndTime)
}

// WindowCovering returns the window of the given weekday that fully covers
// [from, to), or nil if the interval falls outside every window
func WindowCovering(windows []*AvailabilityWindow, dayOfWeek int, from, to types.TimeString) *AvailabilityWindow {
	for _, w := range windows {
		if w.DayOfWeek != dayOfWeek {
			continue
		}
		if w.Covers(from, to) {
			return w
		}
	}
	return nil
}
