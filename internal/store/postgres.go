package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	checkinmodels "io.winapps.wellness/internal/models/checkin"
	"io.winapps.wellness/internal/sentiment"
)

const (
	postgresEntriesTable = `
		CREATE TABLE IF NOT EXISTS entries (
			id BIGSERIAL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			rating INTEGER NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			sentiment DOUBLE PRECISION NOT NULL
		);
	`
	postgresEntriesIndex = `CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);`
)

// PostgresStore keeps entries in PostgreSQL. Connections are acquired from
// the pool per operation and released unconditionally.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps a connection pool and creates the entries table if
// it does not exist. Safe to call repeatedly against the same database.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	s := &PostgresStore{pool: pool}
	if err := s.createTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) createTables(ctx context.Context) error {
	for _, stmt := range []string{postgresEntriesTable, postgresEntriesIndex} {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create entries table: %w", err)
		}
	}
	return nil
}

// CreateEntry scores the note, stamps the current UTC time and appends the
// entry.
func (s *PostgresStore) CreateEntry(ctx context.Context, rating int, note string) (*checkinmodels.Entry, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	entry := &checkinmodels.Entry{
		CreatedAt: time.Now().UTC(),
		Rating:    rating,
		Note:      note,
		Sentiment: sentiment.Score(note),
	}

	query := `
		INSERT INTO entries (created_at, rating, note, sentiment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err = conn.QueryRow(ctx, query,
		entry.CreatedAt, entry.Rating, entry.Note, entry.Sentiment).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	return entry, nil
}

// ListSeries returns (date, rating) for every entry in insertion order.
func (s *PostgresStore) ListSeries(ctx context.Context) ([]checkinmodels.SeriesPoint, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT created_at, rating FROM entries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	series := []checkinmodels.SeriesPoint{}
	for rows.Next() {
		var createdAt time.Time
		var rating int
		if err := rows.Scan(&createdAt, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan series row: %w", err)
		}
		series = append(series, checkinmodels.SeriesPoint{
			Date:   createdAt.UTC().Format(time.DateOnly),
			Rating: rating,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series rows: %w", err)
	}
	return series, nil
}

// Summarize aggregates all entries.
func (s *PostgresStore) Summarize(ctx context.Context) (*checkinmodels.Summary, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT rating, sentiment FROM entries`)
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
