package sentiment

import "strings"

// Fixed lexicons used for scoring. Built once at init; membership test only,
// no stemming or synonyms.
var (
	positiveWords = wordSet("happy good great awesome calm relaxed grateful energetic motivated hopeful")
	negativeWords = wordSet("sad depressed anxious stressed angry lonely tired hopeless")
)

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}
