// Package timeslot implements overlap checks for half-open booking windows.
// A window [start, end) includes its start instant and excludes its end, so a
// reservation ending at 11:00 is compatible with one starting at 11:00.
package timeslot

import "time"

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect. Both windows must satisfy start < end.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
