package dialogue

import (
	"strings"

	"wayfare/models"
)

// Reserved control utterances, recognized ahead of every other intent.
var resetCommands = map[string]struct{}{
	"restart": {},
	"clear":   {},
	"new":     {},
	"reset":   {},
}

var (
	hotelKeywords      = []string{"hotel", "stay", "accommodation", "lodging"}
	flightKeywords     = []string{"flight", "fly", "airline", "ticket"}
	attractionKeywords = []string{"attractions", "places", "sightseeing", "things to do", "what to see", "visit"}
	bookingsKeywords   = []string{"bookings", "reservations", "my trips"}
)

// Classify maps an utterance to an intent by keyword containment, checked in
// a fixed priority order. First match wins: "book a flight and check the
// weather" is a weather query, because weather outranks flight. This is
// deliberately a short-circuit classifier, not a scored one.
func Classify(text string) models.Intent {
	t := strings.ToLower(strings.TrimSpace(text))
	if _, ok := resetCommands[t]; ok {
		return models.IntentReset
	}

	switch {
	case strings.Contains(t, "weather"):
		return models.IntentWeather
	case containsAny(t, hotelKeywords):
		return models.IntentHotel
	case containsAny(t, flightKeywords):
		return models.IntentFlight
	case containsAny(t, attractionKeywords):
		return models.IntentAttraction
	case containsAny(t, bookingsKeywords):
		return models.IntentBookings
	}
	return models.IntentUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
