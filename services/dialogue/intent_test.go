package dialogue

import (
	"testing"

	"wayfare/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Intent
	}{
		{"reset exact", "reset", models.IntentReset},
		{"restart exact", "restart", models.IntentReset},
		{"reset with whitespace", "  clear  ", models.IntentReset},
		{"reset inside sentence is not reset", "please reset my booking", models.IntentUnknown},
		{"weather", "what's the weather in London?", models.IntentWeather},
		{"weather outranks flight", "book a flight and check the weather", models.IntentWeather},
		{"hotel", "Book a hotel in Paris", models.IntentHotel},
		{"stay means hotel", "I need a place to stay", models.IntentHotel},
		{"accommodation", "any accommodation in Rome?", models.IntentHotel},
		{"flight", "show flights to Tokyo", models.IntentFlight},
		{"fly", "I want to fly to Dubai", models.IntentFlight},
		{"ticket", "buy a ticket to Madrid", models.IntentFlight},
		{"hotel outranks flight", "hotel near the airport for my flight", models.IntentHotel},
		{"attractions", "top attractions in New York", models.IntentAttraction},
		{"things to do", "things to do in Rome", models.IntentAttraction},
		{"what to see", "what to see in Kyoto", models.IntentAttraction},
		{"bookings", "show my bookings", models.IntentBookings},
		{"reservations", "list my reservations", models.IntentBookings},
		{"my trips", "view my trips", models.IntentBookings},
		{"unknown", "hello there", models.IntentUnknown},
		{"empty", "", models.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
