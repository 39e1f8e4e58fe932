package emotion

import "time"

// TextRecord is a single ingested text with its pre-computed emotion scores.
// Records are written by the ingestion pipeline; this service only reads them.
type TextRecord struct {
	ID         int64
	DataSource string
	Text       string
	CreatedAt  time.Time
	Scores     Scores
}

// Dominant returns the record's classifier outcome.
func (r *TextRecord) Dominant() Emotion {
	return r.Scores.Dominant()
}

// Day returns the record's creation date truncated to a UTC calendar day.
func (r *TextRecord) Day() time.Time {
	t := r.CreatedAt.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
