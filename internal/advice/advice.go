// Package advice turns a mood rating and sentiment score into a short
// ordered list of recommendations.
package advice

import "strings"

const (
	TipBreathing = "Try a 5-minute breathing exercise or short walk."
	TipReachOut  = "If this persists, consider reaching out to a friend or professional."
	TipGratitude = "Great! Keep a short gratitude list today."
	TipSleep     = "Aim for consistent sleep schedule — wind down 30 mins before bed."
)

// Recommend returns an ordered, non-empty list of tips for the given
// check-in. Low ratings (<= 3) or clearly negative sentiment (< -0.2) get the
// breathing tip followed by the reach-out tip; anything else gets the
// gratitude tip. A note mentioning sleep appends the sleep tip last in
// either branch.
func Recommend(rating int, sentiment float64, text string) []string {
	tips := make([]string, 0, 3)

	if rating <= 3 || sentiment < -0.2 {
		tips = append(tips, TipBreathing, TipReachOut)
	} else {
		tips = append(tips, TipGratitude)
	}

	if strings.Contains(strings.ToLower(text), "sleep") {
		tips = append(tips, TipSleep)
	}

	return tips
}
