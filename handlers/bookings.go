package handlers

import (
	"net/http"

	bookingsRepo "wayfare/database/repository/bookings"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingsHandler serves the persisted booking records.
type BookingsHandler struct {
	Repo bookingsRepo.BookingRepository
}

func NewBookingsHandler(repo bookingsRepo.BookingRepository) *BookingsHandler {
	return &BookingsHandler{Repo: repo}
}

// ListBookings returns every stored booking, oldest first.
func (h *BookingsHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}
