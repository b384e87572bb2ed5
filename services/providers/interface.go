package providers

import (
	"context"

	"wayfare/models"
)

// WeatherProvider returns a ready-to-display weather report for a city.
type WeatherProvider interface {
	Report(ctx context.Context, city string) (string, error)
}

// HotelProvider returns ranked hotel options for a city.
type HotelProvider interface {
	HotelOptions(ctx context.Context, city string) ([]models.HotelOption, error)
}

// FlightProvider returns ranked flight options to a destination city.
type FlightProvider interface {
	FlightOptions(ctx context.Context, city string) ([]models.FlightOption, error)
}

// AttractionProvider returns up to five attraction names for a city.
type AttractionProvider interface {
	TopAttractions(ctx context.Context, city string) ([]string, error)
}
