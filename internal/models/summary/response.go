package models

// SummaryResponse serializes aggregate stats. The pointer fields are omitted
// entirely when no entries exist, so an empty store yields {"count": 0}.
type SummaryResponse struct {
	Count        int      `json:"count"`
	AvgRating    *float64 `json:"avg_rating,omitempty"`
	MedianRating *float64 `json:"median_rating,omitempty"`
	AvgSentiment *float64 `json:"avg_sentiment,omitempty"`
}
