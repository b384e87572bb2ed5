// File: services/dialogue/engine.go
package dialogue

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	bookingsRepo "wayfare/database/repository/bookings"
	"wayfare/models"
	"wayfare/services/providers"
	"wayfare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirmation vocabulary. Positive words are checked before negative ones.
var (
	positiveWords = []string{"yes", "yeah", "yep", "sure", "ok", "okay", "affirmative", "absolutely", "book it", "confirm"}
	negativeWords = []string{"no", "nah", "nope", "negative", "cancel", "stop", "don't", "not"}
)

const (
	replyGreeting        = "How can I help you with your travel plans?"
	replyEmptyInput      = "Please type a message so I can help with your travel plans."
	replyCancelled       = "Booking cancelled. How else can I help?"
	replyAskName         = "Please provide your full name:"
	replyAskYesNo        = "Please respond with 'yes' or 'no' to confirm booking"
	replyAskCityHotel    = "Which city would you like to book a hotel in?"
	replyAskCityFlight   = "Which city would you like to fly to?"
	replyAskCityWeather  = "Which city's weather would you like to know?"
	replyAskCitySights   = "Which city would you like attraction information for?"
	replyInvalidCity     = "Sorry, I didn't get that. Please provide a valid city name."
	replyMissingContext  = "Booking failed due to missing information. Please start over."
	replyNoBookings      = "You have no bookings yet."
	replySaveFailed      = "Sorry, I couldn't save your booking. Please try again."
	replyWeatherDown     = "Sorry, I couldn't reach the weather service. Please try again."
	replyHotelsDown      = "Sorry, I'm having trouble looking up hotels right now. Please try again."
	replyFlightsDown     = "Sorry, I'm having trouble looking up flights right now. Please try again."
	replyAttractionsDown = "Sorry, I couldn't fetch attractions right now. Please try again."
	replyBookingsDown    = "Sorry, I couldn't look up your bookings right now. Please try again."
)

// Service drives one conversation turn at a time.
type Service interface {
	ProcessTurn(ctx context.Context, sessionID, utterance string) (string, error)
}

// ReminderScheduler queues a post-booking check-in reminder. Scheduling is
// best-effort; a failure never fails the booking.
type ReminderScheduler interface {
	ScheduleCheckInReminder(ctx context.Context, booking models.Booking) error
}

// DefaultDialogueService is the dialogue state machine. One utterance is
// fully processed, including provider calls, before the next turn of the same
// session may begin; independent sessions run concurrently.
type DefaultDialogueService struct {
	Contexts    ContextStore
	Weather     providers.WeatherProvider
	Hotels      providers.HotelProvider
	Flights     providers.FlightProvider
	Attractions providers.AttractionProvider
	Bookings    bookingsRepo.BookingRepository
	Reminders   ReminderScheduler // optional

	// ProviderTimeout bounds every provider call; defaults to 5s.
	ProviderTimeout time.Duration

	turnLocks sync.Map // sessionID -> *sync.Mutex
}

// NewBookingID generates an 8-character uppercase booking identifier.
// Uniqueness is the core's responsibility, not the store's.
func NewBookingID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// ProcessTurn consumes one utterance for a session and returns the reply.
// Every expected failure (unresolved city, out-of-range selection, provider
// outage) is recovered into a reply; the returned error is reserved for a
// broken context store.
func (s *DefaultDialogueService) ProcessTurn(ctx context.Context, sessionID, utterance string) (string, error) {
	lock, _ := s.turnLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	logger := utils.GetLogger()

	input := strings.TrimSpace(utterance)
	if input == "" {
		return replyEmptyInput, nil
	}

	sctx, err := s.Contexts.Get(ctx, sessionID)
	if err != nil {
		logger.Warn("dialogue: failed to load session context, starting fresh",
			zap.String("sessionID", sessionID), zap.Error(err))
		sctx = &models.SessionContext{}
	}

	reply := s.step(ctx, sctx, input)

	if sctx.IsEmpty() {
		if err := s.Contexts.Clear(ctx, sessionID); err != nil {
			logger.Warn("dialogue: failed to clear session context",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	} else if err := s.Contexts.Set(ctx, sessionID, sctx); err != nil {
		logger.Warn("dialogue: failed to save session context",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return reply, nil
}

// step resolves one utterance against the session context. The resolution
// order is load-bearing: reset always wins; weather/hotel/flight intents
// interrupt a pending booking flow; pending-slot handling comes next; the
// remaining intents only apply when no slot is pending.
func (s *DefaultDialogueService) step(ctx context.Context, sctx *models.SessionContext, input string) string {
	switch Classify(input) {
	case models.IntentReset:
		sctx.Reset()
		return replyGreeting
	case models.IntentWeather:
		return s.handleWeather(ctx, sctx, input)
	case models.IntentHotel:
		return s.handleBookingSearch(ctx, sctx, input, models.BookingHotel)
	case models.IntentFlight:
		return s.handleBookingSearch(ctx, sctx, input, models.BookingFlight)
	}

	switch sctx.Awaiting {
	case models.SlotSelection:
		return s.handleSelection(sctx, input)
	case models.SlotConfirmation:
		return s.handleConfirmation(sctx, input)
	case models.SlotName:
		return s.handleName(ctx, sctx, input)
	case models.SlotCity:
		return s.handleCityReply(ctx, sctx, input)
	}

	switch Classify(input) {
	case models.IntentAttraction:
		return s.handleAttractions(ctx, sctx, input)
	case models.IntentBookings:
		return s.handleBookingsList(ctx)
	}

	return helpText
}

func (s *DefaultDialogueService) handleWeather(ctx context.Context, sctx *models.SessionContext, input string) string {
	city, ok := ExtractCity(input)
	if !ok {
		city = sctx.City
	}
	if city == "" {
		sctx.Awaiting = models.SlotCity
		sctx.PendingIntent = models.IntentWeather
		return replyAskCityWeather
	}

	pctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	report, err := s.Weather.Report(pctx, city)
	if err != nil {
		utils.GetLogger().Warn("dialogue: weather provider failed",
			zap.String("city", city), zap.Error(err))
		return replyWeatherDown
	}

	sctx.City = city
	return report
}

func (s *DefaultDialogueService) handleBookingSearch(ctx context.Context, sctx *models.SessionContext, input string, bookingType models.BookingType) string {
	// A fresh hotel/flight request abandons any half-finished flow.
	sctx.ClearBookingProgress()

	if city, ok := ExtractCity(input); ok {
		sctx.City = city
	}
	if sctx.City == "" {
		sctx.Awaiting = models.SlotCity
		if bookingType == models.BookingHotel {
			sctx.PendingIntent = models.IntentHotel
			return replyAskCityHotel
		}
		sctx.PendingIntent = models.IntentFlight
		return replyAskCityFlight
	}

	pctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	options, err := s.fetchOptions(pctx, sctx.City, bookingType)
	if err != nil {
		utils.GetLogger().Warn("dialogue: option provider failed",
			zap.String("city", sctx.City), zap.String("type", string(bookingType)), zap.Error(err))
		if bookingType == models.BookingHotel {
			return replyHotelsDown
		}
		return replyFlightsDown
	}
	if len(options) == 0 {
		if bookingType == models.BookingHotel {
			return "Sorry, no hotels found in " + sctx.City
		}
		return "Sorry, no flights available to " + sctx.City
	}

	sctx.Candidates = options
	sctx.BookingType = bookingType
	sctx.Awaiting = models.SlotSelection
	return FormatOptions(options, bookingType, sctx.City) +
		"\n\nWhich would you like? (1-" + strconv.Itoa(len(options)) + ")"
}

func (s *DefaultDialogueService) fetchOptions(ctx context.Context, city string, bookingType models.BookingType) ([]models.Option, error) {
	if bookingType == models.BookingHotel {
		hotels, err := s.Hotels.HotelOptions(ctx, city)
		if err != nil {
			return nil, err
		}
		options := make([]models.Option, len(hotels))
		for i := range hotels {
			h := hotels[i]
			options[i] = models.Option{Type: models.BookingHotel, Hotel: &h}
		}
		return options, nil
	}

	flights, err := s.Flights.FlightOptions(ctx, city)
	if err != nil {
		return nil, err
	}
	options := make([]models.Option, len(flights))
	for i := range flights {
		f := flights[i]
		options[i] = models.Option{Type: models.BookingFlight, Flight: &f}
	}
	return options, nil
}

func (s *DefaultDialogueService) handleSelection(sctx *models.SessionContext, input string) string {
	n, ok := ParseSelection(input)
	if !ok || n < 1 || n > len(sctx.Candidates) {
		return "Please select a number between 1-" + strconv.Itoa(len(sctx.Candidates))
	}

	selected := sctx.Candidates[n-1]
	sctx.Selected = &selected
	sctx.Candidates = nil
	sctx.Awaiting = models.SlotConfirmation
	return "Selected: " + selected.Label() + " for " + selected.Price() +
		"\n\nConfirm booking? (yes/no)"
}

func (s *DefaultDialogueService) handleConfirmation(sctx *models.SessionContext, input string) string {
	lower := strings.ToLower(input)
	if containsAny(lower, positiveWords) {
		sctx.Awaiting = models.SlotName
		return replyAskName
	}
	if containsAny(lower, negativeWords) {
		sctx.Reset()
		return replyCancelled
	}
	return replyAskYesNo
}

func (s *DefaultDialogueService) handleName(ctx context.Context, sctx *models.SessionContext, input string) string {
	// Unreachable through normal transitions, but a context store hiccup
	// could get us here without the full booking state.
	if sctx.Selected == nil || sctx.City == "" || sctx.BookingType == "" {
		sctx.Reset()
		return replyMissingContext
	}

	booking := models.Booking{
		ID:   NewBookingID(),
		Type: sctx.BookingType,
		User: input,
		Date: time.Now().Format("2006-01-02"),
	}
	if sctx.BookingType == models.BookingHotel {
		h := sctx.Selected.Hotel
		booking.Hotel = h.Name
		booking.City = sctx.City
		booking.Price = h.Price
		booking.Address = h.Address
		booking.Rating = h.Rating
	} else {
		f := sctx.Selected.Flight
		booking.Airline = f.Airline
		booking.FlightNumber = f.FlightNumber
		booking.Destination = sctx.City
		booking.Departure = f.Departure
		booking.Arrival = f.Arrival
		booking.Price = f.Price
	}

	pctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	confirmation, err := s.Bookings.Append(pctx, booking)
	if err != nil {
		// Keep the context so the name step can simply be retried.
		utils.GetLogger().Error("dialogue: failed to persist booking",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return replySaveFailed
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleCheckInReminder(ctx, booking); err != nil {
			utils.GetLogger().Warn("dialogue: failed to schedule reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	sctx.Reset()
	return confirmation
}

// handleCityReply resolves a pending city slot and replays the original
// request with a synthetic utterance, so the user never has to repeat it.
func (s *DefaultDialogueService) handleCityReply(ctx context.Context, sctx *models.SessionContext, input string) string {
	city, ok := ExtractCity(input)
	if !ok {
		return replyInvalidCity
	}

	sctx.City = city
	sctx.Awaiting = models.SlotNone
	pending := sctx.PendingIntent
	sctx.PendingIntent = models.IntentNone

	switch pending {
	case models.IntentHotel:
		return s.step(ctx, sctx, "book hotel")
	case models.IntentFlight:
		return s.step(ctx, sctx, "book flight")
	case models.IntentAttraction:
		return s.step(ctx, sctx, "show attractions")
	case models.IntentWeather:
		return s.step(ctx, sctx, "weather")
	}
	return replyInvalidCity
}

func (s *DefaultDialogueService) handleAttractions(ctx context.Context, sctx *models.SessionContext, input string) string {
	city, ok := ExtractCity(input)
	if !ok {
		city = sctx.City
	}
	if city == "" {
		sctx.Awaiting = models.SlotCity
		sctx.PendingIntent = models.IntentAttraction
		return replyAskCitySights
	}

	pctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	attractions, err := s.Attractions.TopAttractions(pctx, city)
	if err != nil {
		utils.GetLogger().Warn("dialogue: attraction provider failed",
			zap.String("city", city), zap.Error(err))
		return replyAttractionsDown
	}
	if len(attractions) == 0 {
		return "Sorry, no attraction information for " + city
	}

	sctx.City = city
	return FormatAttractions(city, attractions)
}

func (s *DefaultDialogueService) handleBookingsList(ctx context.Context) string {
	pctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	bookings, err := s.Bookings.ListAll(pctx)
	if err != nil {
		utils.GetLogger().Warn("dialogue: failed to list bookings", zap.Error(err))
		return replyBookingsDown
	}
	if len(bookings) == 0 {
		return replyNoBookings
	}
	return FormatBookingList(bookings)
}

func (s *DefaultDialogueService) timeout() time.Duration {
	if s.ProviderTimeout > 0 {
		return s.ProviderTimeout
	}
	return 5 * time.Second
}
