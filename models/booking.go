package models

import (
	"fmt"
	"time"
)

// Booking represents a confirmed booking record. Records are immutable once
// written: the store only ever appends and lists them.
type Booking struct {
	ID   string      `bson:"id" json:"id"` // 8-char uppercase identifier
	Type BookingType `bson:"type" json:"type"`
	User string      `bson:"user" json:"user"`
	Date string      `bson:"date" json:"date"` // "YYYY-MM-DD"

	// Hotel bookings.
	Hotel   string  `bson:"hotel,omitempty" json:"hotel,omitempty"`
	City    string  `bson:"city,omitempty" json:"city,omitempty"`
	Address string  `bson:"address,omitempty" json:"address,omitempty"`
	Rating  float64 `bson:"rating,omitempty" json:"rating,omitempty"`

	// Flight bookings.
	Airline      string `bson:"airline,omitempty" json:"airline,omitempty"`
	FlightNumber string `bson:"flight_number,omitempty" json:"flight_number,omitempty"`
	Destination  string `bson:"destination,omitempty" json:"destination,omitempty"`
	Departure    string `bson:"departure,omitempty" json:"departure,omitempty"`
	Arrival      string `bson:"arrival,omitempty" json:"arrival,omitempty"`

	Price     string    `bson:"price" json:"price"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Confirmation renders the user-facing confirmation text for a freshly
// persisted booking. The store returns this from Append.
func (b Booking) Confirmation() string {
	if b.Type == BookingHotel {
		return fmt.Sprintf(`✅ Hotel Booking Confirmed!
ID: %s
Name: %s
Hotel: %s
City: %s
Price: %s
Address: %s
Check-in: Today`, b.ID, b.User, b.Hotel, b.City, b.Price, orNA(b.Address))
	}
	return fmt.Sprintf(`✅ Flight Booking Confirmed!
ID: %s
Name: %s
Flight: %s %s
Destination: %s
Departure: %s | Arrival: %s
Price: %s`, b.ID, b.User, b.Airline, orNA(b.FlightNumber), b.Destination, orNA(b.Departure), orNA(b.Arrival), b.Price)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
