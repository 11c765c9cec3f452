package transform

import "time"

func SecondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// DurationToSeconds rounds up to whole seconds the way the server reports
// remaining time to live.
func DurationToSeconds(d time.Duration) int64 {
	if d <= 0 {
		return int64(d)
	}
	return int64((d + time.Second - 1) / time.Second)
}
