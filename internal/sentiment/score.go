package sentiment

import "strings"

// Score computes a lexicon-based sentiment value in [-1, 1] for the given
// text. Tokens are split on whitespace, lowercased, and trailing punctuation
// is stripped before lookup. Texts with no lexicon matches score exactly 0.
func Score(text string) float64 {
	if text == "" {
		return 0.0
	}

	pos, neg := 0, 0
	for _, token := range strings.Fields(text) {
		word := strings.ToLower(strings.TrimRight(token, ".,!?"))
		if _, ok := positiveWords[word]; ok {
			pos++
		}
		if _, ok := negativeWords[word]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return 0.0
	}
	return float64(pos-neg) / float64(total)
}
