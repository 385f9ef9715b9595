package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	checkinmodels "io.winapps.wellness/internal/models/checkin"
	"io.winapps.wellness/internal/sentiment"
)

const (
	sqliteEntriesTable = `
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			rating INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			sentiment REAL NOT NULL
		);
	`
	sqliteEntriesIndex = `CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);`
)

// SQLiteStore keeps entries in a local SQLite database. This is the default
// backend for single-user deployments.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open SQLite handle and creates the entries table
// if it does not exist. Safe to call repeatedly against the same database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.createTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables(ctx context.Context) error {
	for _, stmt := range []string{sqliteEntriesTable, sqliteEntriesIndex} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create entries table: %w", err)
		}
	}
	return nil
}

// CreateEntry scores the note, stamps the current UTC time and appends the
// entry.
func (s *SQLiteStore) CreateEntry(ctx context.Context, rating int, note string) (*checkinmodels.Entry, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	entry := &checkinmodels.Entry{
		CreatedAt: time.Now().UTC(),
		Rating:    rating,
		Note:      note,
		Sentiment: sentiment.Score(note),
	}

	query := `INSERT INTO entries (created_at, rating, note, sentiment) VALUES (?, ?, ?, ?)`
	result, err := conn.ExecContext(ctx, query,
		entry.CreatedAt.Format(time.RFC3339Nano), entry.Rating, entry.Note, entry.Sentiment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted entry id: %w", err)
	}
	return entry, nil
}

// ListSeries returns (date, rating) for every entry in insertion order.
func (s *SQLiteStore) ListSeries(ctx context.Context) ([]checkinmodels.SeriesPoint, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT created_at, rating FROM entries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	series := []checkinmodels.SeriesPoint{}
	for rows.Next() {
		var createdAt string
		var rating int
		if err := rows.Scan(&createdAt, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan series row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse entry timestamp: %w", err)
		}
		series = append(series, checkinmodels.SeriesPoint{
			Date:   ts.Format(time.DateOnly),
			Rating: rating,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series rows: %w", err)
	}
	return series, nil
}

// Summarize aggregates all entries.
func (s *SQLiteStore) Summarize(ctx context.Context) (*checkinmodels.Summary, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT rating, sentiment FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var ratings []int
	var sentiments []float64
	for rows.Next() {
		var rating int
		var sent float64
		if err := rows.Scan(&rating, &sent); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		ratings = append(ratings, rating)
		sentiments = append(sentiments, sent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entry rows: %w", err)
	}

	return summarize(ratings, sentiments), nil
}

func summarize(ratings []int, sentiments []float64) *checkinmodels.Summary {
	summary := &checkinmodels.Summary{Count: len(ratings)}
	if summary.Count == 0 {
		return summary
	}

	ratingValues := make([]float64, len(ratings))
	for i, r := range ratings {
		ratingValues[i] = float64(r)
	}
	summary.AvgRating = mean(ratingValues)
	summary.MedianRating = medianInts(ratings)
	summary.AvgSentiment = mean(sentiments)
	return summary
}
