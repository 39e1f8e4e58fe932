package emotion

import "context"

// TextRecordRepository provides read access to the text record store.
type TextRecordRepository interface {
	// FindMatching returns every record matching the filter, newest first.
	// Aggregations derive all of their outputs, including totals, from one
	// FindMatching result so counts and breakdowns can never disagree.
	FindMatching(ctx context.Context, filter Filter) ([]TextRecord, error)

	// CountMatching returns the number of records matching the filter
	// without materializing them.
	CountMatching(ctx context.Context, filter Filter) (int64, error)

	// FindByID returns a single record, or shared.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*TextRecord, error)
}
