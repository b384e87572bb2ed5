package dialogue

import (
	"regexp"
	"strings"

	"wayfare/utils"
)

// City extraction tries each pattern in order and keeps the first candidate
// that survives cleanup. The order matters: a sentence containing both a
// preposition phrase and a bare capitalized word must always yield the
// preposition-phrase city, so looser patterns only apply when the stricter
// ones fail.
var cityPatterns = []*regexp.Regexp{
	// "in Paris", "to New York"
	regexp.MustCompile(`(?i)\b(?:in|at|for|near|to)\s+([a-zA-Z\s]{3,})\b`),
	// "hotels Paris", "weather London"
	regexp.MustCompile(`(?i)\b(?:hotels?|flights?|weather|places?|attractions?)\s+(?:in|at|for|near|to)?\s*([a-zA-Z\s]+)\b`),
	// "book a hotel Paris"
	regexp.MustCompile(`(?i)\b(?:book|find|show)\s+(?:a\s+)?(?:hotel|flight)\s+(?:in|at|for|near|to)?\s*([a-zA-Z\s]+)\b`),
	// Bare capitalized word run, length >= 4.
	regexp.MustCompile(`\b([A-Z][a-zA-Z\s]{3,})\b`),
}

var (
	cityStopWords       = regexp.MustCompile(`(?i)\b(?:please|today|now|book|find|show|attractions?|places?)\b`)
	trailingPreposition = regexp.MustCompile(`(?i)\s+\b(?:in|at|for|near|to)\b$`)
)

// ExtractCity pulls a city name out of free-form text. The boolean is false
// when no pattern yields an acceptable candidate; that is a normal outcome,
// not an error.
func ExtractCity(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	for _, pattern := range cityPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			city := strings.TrimSpace(match[1])
			city = strings.TrimSpace(cityStopWords.ReplaceAllString(city, ""))
			city = strings.TrimSpace(trailingPreposition.ReplaceAllString(city, ""))
			if len(city) > 2 {
				return utils.TitleCase(city), true
			}
		}
	}
	return "", false
}
