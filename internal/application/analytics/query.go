package analytics

import (
	"strings"
	"time"

	"github.com/healthshare/backend/internal/domain/emotion"
)

// AllSentinel is the query value meaning "no constraint on this dimension".
const AllSentinel = "all"

const dateLayout = "2006-01-02"

// Query holds the raw filter parameters shared by all analytics endpoints.
// Sources and Emotions are comma-separated lists, dates are YYYY-MM-DD.
type Query struct {
	Sources   string `form:"sources"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Emotions  string `form:"emotions"`
}

// Normalize converts the raw query into a canonical domain filter.
//
// A list containing the "All" sentinel (any casing) leaves the whole
// dimension unconstrained. Date bounds are converted to the half-open
// interval [start of startDate, start of the day after endDate) in UTC,
// so both endpoints are inclusive at day granularity.
//
// Normalization is tolerant: every parameter is optional, and malformed
// values never fail the request. An unparseable date bound is dropped,
// leaving that side of the range open, and unknown emotion names are
// skipped. Only handlers with a structurally required parameter reject
// input, before normalization.
func (q Query) Normalize() emotion.Filter {
	var f emotion.Filter

	sources, all := splitList(q.Sources)
	if !all {
		f.Sources = sources
	}

	if q.StartDate != "" {
		if day, err := parseDay(q.StartDate); err == nil {
			f.StartAt = &day
		}
	}

	if q.EndDate != "" {
		if day, err := parseDay(q.EndDate); err == nil {
			end := day.AddDate(0, 0, 1)
			f.EndBefore = &end
		}
	}

	names, all := splitList(q.Emotions)
	if !all {
		selected := make(map[emotion.Emotion]bool, len(names))
		for _, name := range names {
			if e, ok := emotion.Parse(name); ok && e.IsScored() {
				selected[e] = true
			}
		}
		// Canonical order keeps the derived predicate deterministic.
		for _, e := range emotion.All() {
			if selected[e] {
				f.Emotions = append(f.Emotions, e)
			}
		}
	}

	return f
}

// splitList parses a comma-separated list, dropping empty entries and
// duplicates. The second return value reports whether the sentinel was
// present, which voids the whole list.
func splitList(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		v := strings.TrimSpace(part)
		if v == "" {
			continue
		}
		if strings.EqualFold(v, AllSentinel) {
			return nil, true
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, false
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
}
