// File: services/providers/catalog.go
package providers

import (
	"context"
	"fmt"
	"hash/fnv"

	"wayfare/models"
)

// CatalogProvider serves hotel and flight options from a built-in catalog.
// Major destinations get curated entries; everywhere else gets generic
// options derived from the city name. It stands in for real inventory APIs
// and keeps the booking flow fully functional offline.
type CatalogProvider struct{}

func NewCatalogProvider() *CatalogProvider {
	return &CatalogProvider{}
}

var popularHotels = map[string][]models.HotelOption{
	"New York": {
		{Name: "The Plaza Hotel", Price: "$450/night", Rating: 4.8, Address: "768 5th Ave, New York"},
		{Name: "The Ritz-Carlton", Price: "$520/night", Rating: 4.9, Address: "50 Central Park S, New York"},
		{Name: "Crosby Street Hotel", Price: "$380/night", Rating: 4.7, Address: "79 Crosby St, New York"},
	},
	"Paris": {
		{Name: "Hôtel Ritz Paris", Price: "$720/night", Rating: 4.9, Address: "15 Pl. Vendôme, Paris"},
		{Name: "Le Meurice", Price: "$680/night", Rating: 4.8, Address: "228 Rue de Rivoli, Paris"},
		{Name: "Hôtel Plaza Athénée", Price: "$850/night", Rating: 4.9, Address: "25 Av. Montaigne, Paris"},
	},
	"Tokyo": {
		{Name: "The Ritz-Carlton Tokyo", Price: "$620/night", Rating: 4.9, Address: "Tokyo Midtown 9-7-1 Akasaka"},
		{Name: "Park Hyatt Tokyo", Price: "$580/night", Rating: 4.8, Address: "3-7-1-2 Nishishinjuku, Shinjuku"},
		{Name: "Mandarin Oriental Tokyo", Price: "$750/night", Rating: 4.9, Address: "2-1-1 Nihonbashi Muromachi"},
	},
	"Dubai": {
		{Name: "Burj Al Arab Jumeirah", Price: "$1,200/night", Rating: 4.9, Address: "Jumeirah St, Dubai"},
		{Name: "Atlantis The Palm", Price: "$850/night", Rating: 4.8, Address: "Crescent Rd, Dubai"},
		{Name: "Armani Hotel Dubai", Price: "$780/night", Rating: 4.7, Address: "Burj Khalifa, Dubai"},
	},
}

var popularRoutes = map[string][]models.FlightOption{
	"New York": {
		{Airline: "Delta Airlines", Departure: "07:30 AM", Arrival: "10:45 AM", Price: "$320"},
		{Airline: "American Airlines", Departure: "02:15 PM", Arrival: "05:30 PM", Price: "$350"},
		{Airline: "United Airlines", Departure: "06:00 PM", Arrival: "09:15 PM", Price: "$300"},
	},
	"Paris": {
		{Airline: "Air France", Departure: "09:45 AM", Arrival: "11:30 PM", Price: "$780"},
		{Airline: "British Airways", Departure: "01:20 PM", Arrival: "03:00 AM", Price: "$820"},
		{Airline: "Lufthansa", Departure: "05:30 PM", Arrival: "07:10 AM", Price: "$750"},
	},
	"Tokyo": {
		{Airline: "ANA Airlines", Departure: "10:30 AM", Arrival: "03:45 PM", Price: "$950"},
		{Airline: "Japan Airlines", Departure: "02:00 PM", Arrival: "07:15 PM", Price: "$980"},
		{Airline: "Singapore Airlines", Departure: "08:30 PM", Arrival: "01:45 AM", Price: "$920"},
	},
	"Dubai": {
		{Airline: "Emirates", Departure: "08:15 AM", Arrival: "07:45 PM", Price: "$880"},
		{Airline: "Etihad Airways", Departure: "12:30 PM", Arrival: "12:00 AM", Price: "$850"},
		{Airline: "Qatar Airways", Departure: "04:45 PM", Arrival: "04:15 AM", Price: "$820"},
	},
}

// HotelOptions returns curated hotels for known cities, otherwise a generic
// trio built from the city name.
func (p *CatalogProvider) HotelOptions(ctx context.Context, city string) ([]models.HotelOption, error) {
	if hotels, ok := popularHotels[city]; ok {
		out := make([]models.HotelOption, len(hotels))
		copy(out, hotels)
		return out, nil
	}
	return []models.HotelOption{
		{Name: fmt.Sprintf("Grand %s Hotel", city), Price: "$150/night", Rating: 4.5, Address: fmt.Sprintf("123 Main St, %s", city)},
		{Name: fmt.Sprintf("%s Plaza", city), Price: "$200/night", Rating: 4.2, Address: fmt.Sprintf("456 Center Ave, %s", city)},
		{Name: fmt.Sprintf("Cozy %s Inn", city), Price: "$120/night", Rating: 3.9, Address: fmt.Sprintf("789 Side Rd, %s", city)},
	}, nil
}

// FlightOptions returns curated routes for known destinations, otherwise two
// generic carriers with flight numbers derived from the destination so
// repeated searches stay stable.
func (p *CatalogProvider) FlightOptions(ctx context.Context, city string) ([]models.FlightOption, error) {
	if flights, ok := popularRoutes[city]; ok {
		out := make([]models.FlightOption, len(flights))
		copy(out, flights)
		return out, nil
	}
	h := cityHash(city)
	return []models.FlightOption{
		{
			Airline:      "SkyHigh Airlines",
			FlightNumber: fmt.Sprintf("SH%d", 100+h%900),
			Departure:    "08:00 AM",
			Arrival:      "11:00 AM",
			Duration:     "3h",
			Price:        "$250",
		},
		{
			Airline:      "Global Airways",
			FlightNumber: fmt.Sprintf("GA%d", 200+h%800),
			Departure:    "02:00 PM",
			Arrival:      "06:30 PM",
			Duration:     "4h 30m",
			Price:        "$320",
		},
	}, nil
}

func cityHash(city string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(city))
	return h.Sum32()
}
