package models

// ReminderPayload is the task payload queued for post-booking check-in
// reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Type      string `json:"type"`
	User      string `json:"user"`
	Label     string `json:"label"` // "hotel in city" or "airline to destination"
	Date      string `json:"date"`
}
