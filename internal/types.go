package internal

import "time"

// ProcessStats summarises one dispatch run.
type ProcessStats struct {
	Submitted int64
	Added     int64
	Skipped   int64
	StartTime time.Time
	EndTime   time.Time
}

func (s *ProcessStats) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
