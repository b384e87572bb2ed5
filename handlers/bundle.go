// File: wayfare/handlers/bundle.go
package handlers

import (
	bookingsRepo "wayfare/database/repository/bookings"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	BookingRepo bookingsRepo.BookingRepository

	// Chat endpoints
	ProcessTurnHandler gin.HandlerFunc
	STTHandler         gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler gin.HandlerFunc
}
