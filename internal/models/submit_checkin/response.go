package models

// SubmitCheckinResponse returns the ordered recommendations for the saved
// check-in along with the sentiment derived from the note.
type SubmitCheckinResponse struct {
	Recommendations []string `json:"recommendations"`
	Sentiment       float64  `json:"sentiment"`
}
