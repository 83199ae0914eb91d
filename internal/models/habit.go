package models

// Habit is a user-defined daily task tracked by a count toward a target.
// CurrentCount resets each calendar day; LastUpdated holds the local date
// (YYYY-MM-DD) of the last count mutation and is what rollover detection
// compares against.
type Habit struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TargetCount  int    `json:"targetCount"`
	CurrentCount int    `json:"currentCount"`
	LastUpdated  string `json:"lastUpdated"` // YYYY-MM-DD format
}

// CompletionPercentage returns today's progress as a percentage clamped to
// [0, 100]. A non-positive target yields 0. The fraction truncates, so the
// result is 100 only once the target is actually met.
func (h Habit) CompletionPercentage() int {
	if h.TargetCount <= 0 {
		return 0
	}
	pct := int(float64(h.CurrentCount) / float64(h.TargetCount) * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// IsCompleted reports whether the daily target has been met.
func (h Habit) IsCompleted() bool {
	return h.CurrentCount >= h.TargetCount
}
