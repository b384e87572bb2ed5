package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"wayfare/models"
)

// Spoken replies read better with ordinal words for small lists; numerals
// take over past five.
var ordinalWords = map[int]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
}

func ordinal(i int) string {
	if w, ok := ordinalWords[i]; ok {
		return w
	}
	return strconv.Itoa(i)
}

// FormatOptions renders a numbered candidate list for the selection prompt.
func FormatOptions(options []models.Option, bookingType models.BookingType, city string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are the available %s options in %s:\n", bookingType, city)
	for i, opt := range options {
		switch bookingType {
		case models.BookingHotel:
			h := opt.Hotel
			fmt.Fprintf(&sb, "%s. %s - %s - Rating: %g\n", ordinal(i+1), h.Name, h.Price, h.Rating)
		case models.BookingFlight:
			f := opt.Flight
			fmt.Fprintf(&sb, "%s. %s - Departs at %s for %s\n", ordinal(i+1), f.Airline, f.Departure, f.Price)
		}
	}
	return sb.String()
}

// FormatBookingList renders the persisted booking records, 1-indexed, with a
// per-type icon.
func FormatBookingList(bookings []models.Booking) string {
	lines := make([]string, 0, len(bookings))
	for i, b := range bookings {
		if b.Type == models.BookingHotel {
			lines = append(lines, fmt.Sprintf("%d. 🏨 ID: %s | %s: %s in %s (%s)",
				i+1, b.ID, b.User, b.Hotel, b.City, b.Price))
		} else {
			lines = append(lines, fmt.Sprintf("%d. ✈️ ID: %s | %s: %s to %s (%s)",
				i+1, b.ID, b.User, b.Airline, b.Destination, b.Price))
		}
	}
	return "Your bookings:\n" + strings.Join(lines, "\n")
}

// FormatAttractions renders a bulleted attraction list, capped at five.
func FormatAttractions(city string, attractions []string) string {
	if len(attractions) > 5 {
		attractions = attractions[:5]
	}
	return fmt.Sprintf("Top attractions in %s:\n- %s", city, strings.Join(attractions, "\n- "))
}

const helpText = `I can help with:
- Booking hotels 🏨
- Finding flights ✈️
- Local attractions 🏛️
- Weather information 🌤️
- Viewing bookings 📋

For example:
"Book a hotel in Paris"
"Show flights to Tokyo"
"What's the weather in London?"
"Top attractions in New York"
"View my bookings".`
