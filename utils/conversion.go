package utils

import (
	"strings"
	"unicode"
)

// TitleCase capitalizes the first letter of every word and lowercases the
// rest, the way city names and weather descriptions are presented to users
// ("new york" -> "New York", "CLEAR SKY" -> "Clear Sky").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
