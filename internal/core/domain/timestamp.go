package domain

import (
	"math"
	"time"
)

// Timestamp is a point in time expressed as seconds since the Unix epoch with a
// fractional part, the unit file systems report modification times in.
type Timestamp float64

// TimestampOf converts t to a Timestamp using its wall-clock reading.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(float64(t.UnixNano()) / float64(time.Second))
}

// Time converts ts back to a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	sec, frac := math.Modf(float64(ts))
	return time.Unix(int64(sec), int64(math.Round(frac*float64(time.Second)))).UTC()
}

// Seconds returns the raw number of seconds since the epoch.
func (ts Timestamp) Seconds() float64 {
	return float64(ts)
}
