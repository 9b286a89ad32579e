package utils

import (
	"strconv"
	"time"
)

// EpochSecondsString renders the signed-request timestamp: whole seconds since
// epoch, no fractional part.
func EpochSecondsString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// PeriodKey returns the YYYYMM bucket used by period-scoped sequence counters.
func PeriodKey(t time.Time) string {
	return t.Format("200601")
}

func formatSeconds(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
