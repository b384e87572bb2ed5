package dialogue

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"wayfare/models"
	"wayfare/services/providers"
)

type fakeWeather struct {
	report string
	err    error
}

func (f *fakeWeather) Report(ctx context.Context, city string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.report + " " + city, nil
}

type fakeAttractions struct {
	names []string
	err   error
}

func (f *fakeAttractions) TopAttractions(ctx context.Context, city string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

type failingHotels struct{}

func (failingHotels) HotelOptions(ctx context.Context, city string) ([]models.HotelOption, error) {
	return nil, errors.New("inventory service down")
}

// memRepo is an in-memory append-only booking store.
type memRepo struct {
	mu       sync.Mutex
	records  []models.Booking
	failNext bool
}

func (r *memRepo) Append(ctx context.Context, booking models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return "", errors.New("write failed")
	}
	r.records = append(r.records, booking)
	return booking.Confirmation(), nil
}

func (r *memRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.records))
	copy(out, r.records)
	return out, nil
}

func newTestService(repo *memRepo) (*DefaultDialogueService, *MemoryContextStore) {
	store := NewMemoryContextStore()
	catalog := providers.NewCatalogProvider()
	svc := &DefaultDialogueService{
		Contexts:    store,
		Weather:     &fakeWeather{report: "☀️ Weather in"},
		Hotels:      catalog,
		Flights:     catalog,
		Attractions: &fakeAttractions{names: []string{"Louvre", "Eiffel Tower"}},
		Bookings:    repo,
	}
	return svc, store
}

func turn(t *testing.T, svc *DefaultDialogueService, session, text string) string {
	t.Helper()
	reply, err := svc.ProcessTurn(context.Background(), session, text)
	if err != nil {
		t.Fatalf("ProcessTurn(%q) error = %v", text, err)
	}
	return reply
}

func TestHotelBookingRoundTrip(t *testing.T) {
	repo := &memRepo{}
	svc, store := newTestService(repo)

	reply := turn(t, svc, "s1", "book a hotel in Paris")
	if !strings.Contains(reply, "Here are the available hotel options in Paris:") {
		t.Fatalf("expected hotel options, got %q", reply)
	}
	if !strings.Contains(reply, "Which would you like? (1-3)") {
		t.Fatalf("expected selection prompt, got %q", reply)
	}

	reply = turn(t, svc, "s1", "1")
	if !strings.Contains(reply, "Selected: Hôtel Ritz Paris for $720/night") {
		t.Fatalf("expected selection echo, got %q", reply)
	}
	if !strings.Contains(reply, "Confirm booking? (yes/no)") {
		t.Fatalf("expected confirmation prompt, got %q", reply)
	}

	reply = turn(t, svc, "s1", "yes")
	if reply != "Please provide your full name:" {
		t.Fatalf("expected name prompt, got %q", reply)
	}

	reply = turn(t, svc, "s1", "Jane Doe")
	if !strings.Contains(reply, "✅ Hotel Booking Confirmed!") {
		t.Fatalf("expected confirmation, got %q", reply)
	}
	if !strings.Contains(reply, "Name: Jane Doe") {
		t.Fatalf("confirmation should carry the name, got %q", reply)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.records))
	}
	b := repo.records[0]
	if b.Type != models.BookingHotel || b.City != "Paris" || b.User != "Jane Doe" {
		t.Errorf("unexpected booking record: %+v", b)
	}
	if len(b.ID) != 8 || b.ID != strings.ToUpper(b.ID) {
		t.Errorf("booking ID should be 8 uppercase chars, got %q", b.ID)
	}

	// The conversation is over; its context must be gone.
	sctx, _ := store.Get(context.Background(), "s1")
	if !sctx.IsEmpty() {
		t.Errorf("context should be cleared after booking, got %+v", sctx)
	}
}

func TestFlightBookingWithWordSelection(t *testing.T) {
	repo := &memRepo{}
	svc, _ := newTestService(repo)

	turn(t, svc, "s1", "show flights to Oslo")
	reply := turn(t, svc, "s1", "two")
	if !strings.Contains(reply, "Selected: Global Airways for $320") {
		t.Fatalf("expected second flight selected, got %q", reply)
	}

	turn(t, svc, "s1", "sure")
	reply = turn(t, svc, "s1", "John Smith")
	if !strings.Contains(reply, "✅ Flight Booking Confirmed!") {
		t.Fatalf("expected flight confirmation, got %q", reply)
	}

	b := repo.records[0]
	if b.Type != models.BookingFlight || b.Destination != "Oslo" || b.Airline != "Global Airways" {
		t.Errorf("unexpected booking record: %+v", b)
	}
}

func TestOutOfRangeSelectionReprompts(t *testing.T) {
	svc, store := newTestService(&memRepo{})

	turn(t, svc, "s1", "book a hotel in Paris")
	reply := turn(t, svc, "s1", "5")
	if reply != "Please select a number between 1-3" {
		t.Fatalf("expected range reprompt, got %q", reply)
	}

	// An invalid pick must not disturb the pending selection.
	sctx, _ := store.Get(context.Background(), "s1")
	if sctx.Awaiting != models.SlotSelection || len(sctx.Candidates) != 3 {
		t.Errorf("selection state should be unchanged, got %+v", sctx)
	}

	reply = turn(t, svc, "s1", "garbage")
	if reply != "Please select a number between 1-3" {
		t.Fatalf("expected range reprompt for non-number, got %q", reply)
	}
}

func TestConfirmationDeclineCancelsBooking(t *testing.T) {
	repo := &memRepo{}
	svc, store := newTestService(repo)

	turn(t, svc, "s1", "book a hotel in Paris")
	turn(t, svc, "s1", "1")
	reply := turn(t, svc, "s1", "no")
	if reply != "Booking cancelled. How else can I help?" {
		t.Fatalf("expected cancellation, got %q", reply)
	}

	if len(repo.records) != 0 {
		t.Errorf("no booking should be stored after decline")
	}
	sctx, _ := store.Get(context.Background(), "s1")
	if !sctx.IsEmpty() {
		t.Errorf("context should be cleared after decline, got %+v", sctx)
	}
}

func TestConfirmationUnrecognizedReprompts(t *testing.T) {
	svc, store := newTestService(&memRepo{})

	turn(t, svc, "s1", "book a hotel in Paris")
	turn(t, svc, "s1", "1")
	reply := turn(t, svc, "s1", "maybe")
	if reply != "Please respond with 'yes' or 'no' to confirm booking" {
		t.Fatalf("expected yes/no reprompt, got %q", reply)
	}

	sctx, _ := store.Get(context.Background(), "s1")
	if sctx.Awaiting != models.SlotConfirmation {
		t.Errorf("should still await confirmation, got %+v", sctx)
	}
}

func TestResetInterruptsBookingFlow(t *testing.T) {
	svc, store := newTestService(&memRepo{})

	turn(t, svc, "s1", "book a hotel in Paris")
	reply := turn(t, svc, "s1", "reset")
	if reply != "How can I help you with your travel plans?" {
		t.Fatalf("expected reset greeting, got %q", reply)
	}

	sctx, _ := store.Get(context.Background(), "s1")
	if !sctx.IsEmpty() {
		t.Errorf("context should be cleared after reset, got %+v", sctx)
	}
}

func TestCityPromptAndReplay(t *testing.T) {
	svc, _ := newTestService(&memRepo{})

	reply := turn(t, svc, "s1", "book a hotel")
	if reply != "Which city would you like to book a hotel in?" {
		t.Fatalf("expected city prompt, got %q", reply)
	}

	reply = turn(t, svc, "s1", "Paris")
	if !strings.Contains(reply, "Here are the available hotel options in Paris:") {
		t.Fatalf("expected hotel options after city reply, got %q", reply)
	}
}

func TestCityPromptRejectsUnusableReply(t *testing.T) {
	svc, store := newTestService(&memRepo{})

	turn(t, svc, "s1", "book a hotel")
	reply := turn(t, svc, "s1", "uh")
	if reply != "Sorry, I didn't get that. Please provide a valid city name." {
		t.Fatalf("expected invalid city reprompt, got %q", reply)
	}

	sctx, _ := store.Get(context.Background(), "s1")
	if sctx.Awaiting != models.SlotCity || sctx.PendingIntent != models.IntentHotel {
		t.Errorf("city slot should remain pending, got %+v", sctx)
	}
}

func TestCityCarryOverFromWeather(t *testing.T) {
	svc, _ := newTestService(&memRepo{})

	reply := turn(t, svc, "s1", "what's the weather in Tokyo?")
	if !strings.Contains(reply, "Tokyo") {
		t.Fatalf("expected weather report for Tokyo, got %q", reply)
	}

	// No city in the follow-up; the one from the weather query carries over.
	reply = turn(t, svc, "s1", "book a hotel")
	if !strings.Contains(reply, "Here are the available hotel options in Tokyo:") {
		t.Fatalf("expected carry-over city, got %q", reply)
	}
}

func TestHotelProviderFailure(t *testing.T) {
	svc, store := newTestService(&memRepo{})
	svc.Hotels = failingHotels{}

	reply := turn(t, svc, "s1", "book a hotel in Paris")
	if reply != "Sorry, I'm having trouble looking up hotels right now. Please try again." {
		t.Fatalf("expected apology, got %q", reply)
	}

	sctx, _ := store.Get(context.Background(), "s1")
	if sctx.Awaiting != models.SlotNone || len(sctx.Candidates) != 0 {
		t.Errorf("no selection state should be set on provider failure, got %+v", sctx)
	}
}

func TestWeatherProviderFailure(t *testing.T) {
	svc, _ := newTestService(&memRepo{})
	svc.Weather = &fakeWeather{err: errors.New("upstream down")}

	reply := turn(t, svc, "s1", "weather in Paris")
	if reply != "Sorry, I couldn't reach the weather service. Please try again." {
		t.Fatalf("expected apology, got %q", reply)
	}
}

func TestPersistenceFailureKeepsNameStep(t *testing.T) {
	repo := &memRepo{failNext: true}
	svc, store := newTestService(repo)

	turn(t, svc, "s1", "book a hotel in Paris")
	turn(t, svc, "s1", "1")
	turn(t, svc, "s1", "yes")
	reply := turn(t, svc, "s1", "Jane Doe")
	if reply != "Sorry, I couldn't save your booking. Please try again." {
		t.Fatalf("expected save failure apology, got %q", reply)
	}

	sctx, _ := store.Get(context.Background(), "s1")
	if sctx.Awaiting != models.SlotName || sctx.Selected == nil {
		t.Errorf("name step should survive a failed write, got %+v", sctx)
	}

	// Retrying the same name succeeds.
	reply = turn(t, svc, "s1", "Jane Doe")
	if !strings.Contains(reply, "✅ Hotel Booking Confirmed!") {
		t.Fatalf("expected confirmation on retry, got %q", reply)
	}
	if len(repo.records) != 1 {
		t.Errorf("expected 1 stored booking after retry, got %d", len(repo.records))
	}
}

func TestAttractionsAndBookingsList(t *testing.T) {
	repo := &memRepo{records: []models.Booking{
		{ID: "AB12CD34", Type: models.BookingHotel, User: "Jane Doe", Hotel: "Paris Plaza", City: "Paris", Price: "$200/night"},
	}}
	svc, _ := newTestService(repo)

	reply := turn(t, svc, "s1", "top attractions in Paris")
	if !strings.Contains(reply, "Top attractions in Paris:") || !strings.Contains(reply, "- Louvre") {
		t.Fatalf("expected attraction list, got %q", reply)
	}

	reply = turn(t, svc, "s1", "show my bookings")
	if !strings.Contains(reply, "Your bookings:") || !strings.Contains(reply, "AB12CD34") {
		t.Fatalf("expected booking list, got %q", reply)
	}
}

func TestBookingListReadIsIdempotent(t *testing.T) {
	repo := &memRepo{}
	svc, _ := newTestService(repo)

	turn(t, svc, "s1", "book a hotel in Paris")
	turn(t, svc, "s1", "1")
	turn(t, svc, "s1", "yes")
	turn(t, svc, "s1", "Jane Doe")

	first := turn(t, svc, "s1", "show my bookings")
	second := turn(t, svc, "s1", "show my bookings")
	if first != second {
		t.Errorf("reading bookings twice should give identical results:\n%q\n%q", first, second)
	}
}

func TestEmptyBookingsList(t *testing.T) {
	svc, _ := newTestService(&memRepo{})

	reply := turn(t, svc, "s1", "show my bookings")
	if reply != "You have no bookings yet." {
		t.Fatalf("expected empty-list message, got %q", reply)
	}
}

func TestEmptyInputAndUnknownIntent(t *testing.T) {
	svc, store := newTestService(&memRepo{})

	reply := turn(t, svc, "s1", "   ")
	if reply != "Please type a message so I can help with your travel plans." {
		t.Fatalf("expected empty-input prompt, got %q", reply)
	}
	sctx, _ := store.Get(context.Background(), "s1")
	if !sctx.IsEmpty() {
		t.Errorf("empty input must not create state, got %+v", sctx)
	}

	reply = turn(t, svc, "s1", "tell me a joke")
	if !strings.Contains(reply, "I can help with:") {
		t.Fatalf("expected help text, got %q", reply)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	svc, _ := newTestService(&memRepo{})

	turn(t, svc, "s1", "book a hotel in Paris")
	reply := turn(t, svc, "s2", "1")
	if !strings.Contains(reply, "I can help with:") {
		t.Fatalf("a bare number in a fresh session should get help text, got %q", reply)
	}
}

func TestNewBookingID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewBookingID()
		if len(id) != 8 {
			t.Fatalf("NewBookingID() length = %d, want 8", len(id))
		}
		if id != strings.ToUpper(id) {
			t.Fatalf("NewBookingID() = %q, want uppercase", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewBookingID() produced duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}
