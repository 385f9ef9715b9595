// Package store persists check-in entries. Entries form an append-only log:
// they are written once, with sentiment derived from the note at insertion
// time, and are never updated or deleted afterwards.
package store

import (
	"context"

	checkinmodels "io.winapps.wellness/internal/models/checkin"
)

// Store is the persistence contract shared by the SQLite and Postgres
// backends. Every operation acquires its connection for the duration of the
// call only and releases it on all exit paths.
type Store interface {
	// CreateEntry scores the note, stamps the current UTC time and appends
	// the entry. It returns the persisted entry including its derived
	// sentiment.
	CreateEntry(ctx context.Context, rating int, note string) (*checkinmodels.Entry, error)

	// ListSeries returns every entry in insertion order, reduced to its
	// date (YYYY-MM-DD) and rating for charting.
	ListSeries(ctx context.Context) ([]checkinmodels.SeriesPoint, error)

	// Summarize aggregates all entries. With zero entries only Count is
	// meaningful; otherwise it carries mean rating, median rating and mean
	// sentiment.
	Summarize(ctx context.Context) (*checkinmodels.Summary, error)
}
