package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"io.winapps.wellness/internal/db"
)

func newTestStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()

	database, err := db.InitSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	st, err := NewSQLiteStore(context.Background(), database)
	require.NoError(t, err)
	return st, database
}

func TestNewSQLiteStore_Idempotent(t *testing.T) {
	st, database := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateEntry(ctx, 4, "good day")
	require.NoError(t, err)

	// re-running schema bootstrap must not drop or duplicate anything
	again, err := NewSQLiteStore(ctx, database)
	require.NoError(t, err)

	summary, err := again.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
}

func TestCreateEntry_DerivesSentimentAndTimestamp(t *testing.T) {
	st, _ := newTestStore(t)

	entry, err := st.CreateEntry(context.Background(), 5, "happy and grateful")
	require.NoError(t, err)

	assert.Equal(t, 5, entry.Rating)
	assert.Equal(t, "happy and grateful", entry.Note)
	assert.Equal(t, 1.0, entry.Sentiment)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), entry.CreatedAt, time.Minute)
}

func TestListSeries_RoundTrip(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	first, err := st.CreateEntry(ctx, 4, "walked in the park")
	require.NoError(t, err)
	_, err = st.CreateEntry(ctx, 2, "")
	require.NoError(t, err)

	series, err := st.ListSeries(ctx)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, 4, series[0].Rating)
	assert.Equal(t, 2, series[1].Rating)
	assert.Len(t, series[0].Date, 10)
	assert.Equal(t, first.CreatedAt.Format(time.DateOnly), series[0].Date)
}

func TestListSeries_Empty(t *testing.T) {
	st, _ := newTestStore(t)

	series, err := st.ListSeries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, series)
	assert.NotNil(t, series)
}

func TestSummarize_Empty(t *testing.T) {
	st, _ := newTestStore(t)

	summary, err := st.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}

func TestSummarize_MedianEvenCount(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	for _, rating := range []int{1, 2, 3, 4} {
		_, err := st.CreateEntry(ctx, rating, "")
		require.NoError(t, err)
	}

	summary, err := st.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 2.5, summary.MedianRating)
	assert.Equal(t, 2.5, summary.AvgRating)
	assert.Equal(t, 0.0, summary.AvgSentiment)
}

func TestSummarize_AvgSentiment(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateEntry(ctx, 5, "happy and grateful")
	require.NoError(t, err)
	_, err = st.CreateEntry(ctx, 1, "sad and anxious")
	require.NoError(t, err)

	summary, err := st.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 0.0, summary.AvgSentiment, 1e-9)
	assert.Equal(t, 3.0, summary.AvgRating)
}
