package models

import "time"

// Entry is one persisted check-in. Entries are append-only: the sentiment
// value is derived from the note once at insertion and never recomputed.
type Entry struct {
	ID        int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	Rating    int       `json:"rating"`
	Note      string    `json:"note"`
	Sentiment float64   `json:"sentiment"`
}

// SeriesPoint is one charting sample: the entry's date (YYYY-MM-DD) and its
// rating, in insertion order.
type SeriesPoint struct {
	Date   string `json:"date"`
	Rating int    `json:"rating"`
}

// Summary aggregates all stored entries. When Count is zero the remaining
// fields are meaningless and must not be serialized.
type Summary struct {
	Count        int
	AvgRating    float64
	MedianRating float64
	AvgSentiment float64
}
