package bench

import "time"

// MeasureExec runs exec and reports how long it took.
func MeasureExec(exec func() error) (time.Duration, error) {
	s := time.Now()
	err := exec()
	return time.Since(s), err
}

// Rate returns events per second over d.
func Rate(events int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(events) / d.Seconds()
}
