package models

// BookingType discriminates the two bookable product kinds.
type BookingType string

const (
	BookingHotel  BookingType = "hotel"
	BookingFlight BookingType = "flight"
)

// HotelOption is a bookable hotel as returned by a hotel provider.
type HotelOption struct {
	Name    string  `json:"name"`
	Price   string  `json:"price"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
}

// FlightOption is a bookable flight as returned by a flight provider.
type FlightOption struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration,omitempty"`
	Price        string `json:"price"`
}

// Option is a tagged candidate offered to the user during a booking flow.
// Exactly one of Hotel or Flight is set, matching Type.
type Option struct {
	Type   BookingType   `json:"type"`
	Hotel  *HotelOption  `json:"hotel,omitempty"`
	Flight *FlightOption `json:"flight,omitempty"`
}

// Label is the name shown when a candidate is selected: hotel name or airline.
func (o Option) Label() string {
	if o.Type == BookingHotel && o.Hotel != nil {
		return o.Hotel.Name
	}
	if o.Flight != nil {
		return o.Flight.Airline
	}
	return ""
}

// Price returns the display price of the candidate.
func (o Option) Price() string {
	if o.Type == BookingHotel && o.Hotel != nil {
		return o.Hotel.Price
	}
	if o.Flight != nil {
		return o.Flight.Price
	}
	return "$0"
}
