package emotion

import "time"

// Filter is the canonical, fully-normalized selection over text records.
// Unset dimensions place no constraint at all on the underlying query.
//
// Date bounds are half-open: StartAt is inclusive (start of the first day),
// EndBefore is exclusive (start of the day after the last requested day).
type Filter struct {
	Sources   []string
	StartAt   *time.Time
	EndBefore *time.Time
	// Emotions restricts matches to rows where at least one of the listed
	// emotions has a positive score. Only scored emotions are valid here.
	Emotions []Emotion
}

// IsUnconstrained reports whether the filter matches every record.
func (f Filter) IsUnconstrained() bool {
	return len(f.Sources) == 0 && f.StartAt == nil && f.EndBefore == nil && len(f.Emotions) == 0
}
