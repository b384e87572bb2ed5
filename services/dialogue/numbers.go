package dialogue

import "strings"

// numberWords maps digit strings, cardinal words and ordinal words onto the
// selection index they mean. Spoken input routinely arrives as "two" or
// "second" rather than "2".
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	"6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
}

// ParseSelection converts a selection utterance to a 1-based index. The
// boolean is false for anything that isn't a recognized number word.
func ParseSelection(word string) (int, bool) {
	n, ok := numberWords[strings.ToLower(strings.TrimSpace(word))]
	return n, ok
}
