package models

// Intent is the user's high-level goal for a single utterance.
type Intent string

const (
	IntentNone       Intent = ""
	IntentReset      Intent = "reset"
	IntentWeather    Intent = "weather"
	IntentHotel      Intent = "hotel"
	IntentFlight     Intent = "flight"
	IntentAttraction Intent = "attractions"
	IntentBookings   Intent = "bookings"
	IntentUnknown    Intent = "unknown"
)

// AwaitingSlot names the single piece of information the dialogue is waiting
// for. At most one slot is pending at a time; SlotNone means the conversation
// is idle.
type AwaitingSlot string

const (
	SlotNone         AwaitingSlot = ""
	SlotCity         AwaitingSlot = "city"
	SlotSelection    AwaitingSlot = "selection"
	SlotConfirmation AwaitingSlot = "confirmation"
	SlotName         AwaitingSlot = "name"
)

// SessionContext is the per-conversation dialogue state. It lives in the
// context store for the lifetime of the conversation and is never persisted
// beyond that.
type SessionContext struct {
	Awaiting      AwaitingSlot `json:"awaiting"`
	PendingIntent Intent       `json:"pendingIntent"`
	City          string       `json:"city"`
	BookingType   BookingType  `json:"bookingType"`
	Candidates    []Option     `json:"candidates,omitempty"`
	Selected      *Option      `json:"selected,omitempty"`
}

// Reset clears the whole conversation state. Used after a completed booking,
// a cancellation, or an explicit reset command.
func (c *SessionContext) Reset() {
	*c = SessionContext{}
}

// ClearBookingProgress drops any half-finished selection, confirmation or
// name capture so a fresh hotel/flight request starts clean. The resolved
// city is kept for carry-over.
func (c *SessionContext) ClearBookingProgress() {
	c.Awaiting = SlotNone
	c.PendingIntent = IntentNone
	c.BookingType = ""
	c.Candidates = nil
	c.Selected = nil
}

// IsEmpty reports whether the context carries no conversation state at all.
func (c *SessionContext) IsEmpty() bool {
	return c.Awaiting == SlotNone &&
		c.PendingIntent == IntentNone &&
		c.City == "" &&
		c.BookingType == "" &&
		len(c.Candidates) == 0 &&
		c.Selected == nil
}
