// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/busline-travel/busline/lib/booking"
	"github.com/busline-travel/busline/lib/busapi"
	"github.com/busline-travel/busline/lib/clock"
	"github.com/busline-travel/busline/lib/testutil"
)

// fakeProvider is an in-memory booking.Provider. CreateBooking records
// every payload it receives and answers with createResult/createErr.
type fakeProvider struct {
	schedule    busapi.Schedule
	scheduleErr error
	booked      []int

	createCalls  []busapi.Booking
	createResult busapi.Booking
	createErr    error
}

func (fake *fakeProvider) Schedule(ctx context.Context, scheduleID int) (busapi.Schedule, error) {
	return fake.schedule, fake.scheduleErr
}

func (fake *fakeProvider) BookedSeats(ctx context.Context, scheduleID int) ([]int, error) {
	return fake.booked, nil
}

func (fake *fakeProvider) CreateBooking(ctx context.Context, payload busapi.Booking) (busapi.Booking, error) {
	fake.createCalls = append(fake.createCalls, payload)
	if fake.createErr != nil {
		return busapi.Booking{}, fake.createErr
	}
	result := fake.createResult
	if result.BookingID == 0 {
		result = payload
		result.BookingID = 1
	}
	return result, nil
}

// blockingProvider gates CreateBooking on a pair of channels so tests
// can observe the model while a submission is in flight.
type blockingProvider struct {
	fakeProvider
	createStarted chan struct{}
	createRelease chan struct{}
}

func (blocking *blockingProvider) CreateBooking(ctx context.Context, payload busapi.Booking) (busapi.Booking, error) {
	blocking.createStarted <- struct{}{}
	<-blocking.createRelease
	return blocking.fakeProvider.CreateBooking(ctx, payload)
}

func testSchedule() busapi.Schedule {
	return busapi.Schedule{
		ScheduleID:    17,
		BusName:       "Night Express",
		BusVehicleNo:  "LAG-442-XY",
		ScheduleDate:  "2026-09-01",
		DepartureTime: "21:00",
		ArrivalTime:   "05:30",
		TotalSeats:    12,
		Price:         3000,
	}
}

// loadedModel builds a model over a freshly loaded session, sized to a
// standard terminal, failing the test if the load errors.
func loadedModel(t *testing.T, provider booking.Provider, schedule busapi.Schedule) Model {
	t.Helper()
	fixed := clock.Fake(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	session := booking.NewSession(provider, schedule.ScheduleID, 12179, fixed, nil)

	model := NewModel(session)
	message := model.Init()()
	loaded, ok := message.(scheduleLoadedMsg)
	if !ok {
		t.Fatalf("Init command produced %T, want scheduleLoadedMsg", message)
	}
	if loaded.err != nil {
		t.Fatalf("load: %v", loaded.err)
	}

	updated, _ := model.Update(loaded)
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

// pressKeys feeds a string of single-rune key presses through Update.
func pressKeys(t *testing.T, model Model, keys string) Model {
	t.Helper()
	for _, character := range keys {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
		model = updated.(Model)
	}
	return model
}

func press(t *testing.T, model Model, keyType tea.KeyType) Model {
	t.Helper()
	updated, _ := model.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model)
}

func pressSpace(t *testing.T, model Model) Model {
	t.Helper()
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	return updated.(Model)
}

func TestModelLoadPlacesCursorOnFirstOpenSeat(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), booked: []int{1, 2}}
	model := loadedModel(t, fake, fake.schedule)

	if !model.loaded {
		t.Fatal("model should be loaded")
	}
	// Seats 1 and 2 are booked; the cursor starts on seat 3 (index 2).
	if model.seatCursor != 2 {
		t.Errorf("seatCursor = %d, want 2", model.seatCursor)
	}
}

func TestModelLoadErrorShownAndAnyKeyExits(t *testing.T) {
	fake := &fakeProvider{scheduleErr: errors.New("connection refused")}
	fixed := clock.Fake(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	session := booking.NewSession(fake, 17, 12179, fixed, nil)

	model := NewModel(session)
	updated, _ := model.Update(model.Init()().(scheduleLoadedMsg))
	model = updated.(Model)

	if !strings.Contains(model.View(), "connection refused") {
		t.Error("view should show the load error")
	}

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if command == nil {
		t.Fatal("any key after a load error should quit")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected QuitMsg after load error key press")
	}
}

func TestModelSeatNavigationAndToggle(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	model := loadedModel(t, fake, fake.schedule)

	// Cursor starts at seat 1. Right twice is blocked at the row edge
	// after three steps; down moves a full row.
	model = pressKeys(t, model, "l")
	if model.seatCursor != 1 {
		t.Errorf("after right: seatCursor = %d, want 1", model.seatCursor)
	}
	model = pressKeys(t, model, "j")
	if model.seatCursor != 5 {
		t.Errorf("after down: seatCursor = %d, want 5", model.seatCursor)
	}

	// Toggle seat 6 (index 5), then seat 5.
	model = pressSpace(t, model)
	model = pressKeys(t, model, "h")
	model = pressSpace(t, model)

	selected := model.session.SelectedSeats()
	if len(selected) != 2 || selected[0].SeatNumber != 5 || selected[1].SeatNumber != 6 {
		t.Fatalf("selected seats = %+v, want 5 and 6", selected)
	}

	// Toggling again deselects.
	model = pressSpace(t, model)
	if got := len(model.session.SelectedSeats()); got != 1 {
		t.Errorf("after deselect: %d seats selected, want 1", got)
	}
}

func TestModelToggleBookedSeatHasNoEffect(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), booked: []int{1}}
	model := loadedModel(t, fake, fake.schedule)

	// Move onto the booked seat 1 and try to toggle it.
	model = pressKeys(t, model, "h")
	if model.seatCursor != 0 {
		t.Fatalf("seatCursor = %d, want 0", model.seatCursor)
	}
	model = pressSpace(t, model)

	if got := len(model.session.SelectedSeats()); got != 0 {
		t.Errorf("booked seat toggle selected %d seats, want 0", got)
	}
}

func TestModelRosterEditing(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	model := loadedModel(t, fake, fake.schedule)

	// Select seat 1 and switch to the passengers tab.
	model = pressSpace(t, model)
	model = pressKeys(t, model, "2")
	if model.activeTab != TabPassengers {
		t.Fatal("tab should be passengers")
	}

	// Edit the name: Enter opens the cell, runes type, Enter commits.
	model = press(t, model, tea.KeyEnter)
	if model.editBuffer == nil {
		t.Fatal("Enter should start editing")
	}
	model = pressKeys(t, model, "Ada Obi")
	model = press(t, model, tea.KeyEnter)

	// Age, with a backspaced typo.
	model = press(t, model, tea.KeyRight)
	model = press(t, model, tea.KeyEnter)
	model = pressKeys(t, model, "35")
	model = press(t, model, tea.KeyBackspace)
	model = pressKeys(t, model, "4")
	model = press(t, model, tea.KeyEnter)

	// Gender.
	model = press(t, model, tea.KeyRight)
	model = press(t, model, tea.KeyEnter)
	model = pressKeys(t, model, "F")
	model = press(t, model, tea.KeyEnter)

	passengers := model.session.Passengers()
	if len(passengers) != 1 {
		t.Fatalf("expected 1 passenger, got %d", len(passengers))
	}
	if passengers[0].PassengerName != "Ada Obi" {
		t.Errorf("name = %q, want %q", passengers[0].PassengerName, "Ada Obi")
	}
	if passengers[0].Age != 34 {
		t.Errorf("age = %d, want 34", passengers[0].Age)
	}
	if passengers[0].Gender != "F" {
		t.Errorf("gender = %q, want %q", passengers[0].Gender, "F")
	}
	if !model.session.IsComplete() {
		t.Error("roster should be complete")
	}
}

func TestModelEditEscapeKeepsStoredValue(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	model := loadedModel(t, fake, fake.schedule)

	model = pressSpace(t, model)
	model = pressKeys(t, model, "2")
	model = press(t, model, tea.KeyEnter)
	model = pressKeys(t, model, "typo")
	model = press(t, model, tea.KeyEscape)

	if model.editBuffer != nil {
		t.Error("escape should end editing")
	}
	if got := model.session.Passengers()[0].PassengerName; got != "" {
		t.Errorf("name = %q, want empty after cancel", got)
	}
}

func TestModelRosterScrollsToFocusedRow(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	model := loadedModel(t, fake, fake.schedule)

	// Shrink the window so the roster viewport shows three lines.
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: rosterChromeLines + 3})
	model = updated.(Model)

	// Select six seats: 1-4 on the first row, 7-8 on the second.
	model = pressSpace(t, model)
	model = pressKeys(t, model, "l")
	model = pressSpace(t, model)
	model = pressKeys(t, model, "l")
	model = pressSpace(t, model)
	model = pressKeys(t, model, "l")
	model = pressSpace(t, model)
	model = pressKeys(t, model, "j")
	model = pressSpace(t, model)
	model = pressKeys(t, model, "h")
	model = pressSpace(t, model)

	model = pressKeys(t, model, "2jjjjj")
	if model.rosterRow != 5 {
		t.Fatalf("rosterRow = %d, want 5", model.rosterRow)
	}
	// Row 5 sits on content line 6; with a 3-line viewport the offset
	// must advance to keep it visible.
	if got, want := model.rosterView.YOffset, 4; got != want {
		t.Errorf("YOffset = %d, want %d after scrolling down", got, want)
	}

	model = pressKeys(t, model, "kkkkk")
	if got, want := model.rosterView.YOffset, 1; got != want {
		t.Errorf("YOffset = %d, want %d after scrolling back up", got, want)
	}
}

func TestModelSubmitWithoutSeatsRaisesWarning(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	model := loadedModel(t, fake, fake.schedule)

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = updated.(Model)
	if command != nil {
		t.Fatal("validation failure should not produce a command")
	}

	notification := model.session.Notification()
	if notification == nil || notification.Kind != booking.NotificationWarning {
		t.Fatalf("expected warning notification, got %+v", notification)
	}
	if !strings.Contains(model.View(), "No Seats Selected") {
		t.Error("view should show the warning modal")
	}

	// Escape dismisses the warning without quitting.
	updated, command = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model = updated.(Model)
	if command != nil {
		t.Error("dismissing a warning should not quit")
	}
	if model.session.Notification() != nil {
		t.Error("notification should be cleared")
	}
}

func TestModelSubmitLifecycle(t *testing.T) {
	blocking := &blockingProvider{
		fakeProvider:  fakeProvider{schedule: testSchedule()},
		createStarted: make(chan struct{}),
		createRelease: make(chan struct{}),
	}
	model := loadedModel(t, blocking, blocking.schedule)

	// Select seat 1 and complete its passenger.
	model = pressSpace(t, model)
	model = completePassenger(t, model)
	model = pressKeys(t, model, "1")

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = updated.(Model)
	if command == nil {
		t.Fatal("submit should produce a command")
	}

	// Run the network command in the background, as the bubbletea
	// runtime would.
	results := make(chan tea.Msg, 1)
	go func() { results <- command() }()
	testutil.RequireReceive(t, blocking.createStarted, 5*time.Second, "waiting for CreateBooking")

	if !model.session.Submitting() {
		t.Error("session should be submitting while the call is in flight")
	}
	if !strings.Contains(model.View(), "Submitting booking...") {
		t.Error("view should show the in-flight indicator")
	}

	// A second press while in flight is ignored: no second command.
	updated, retry := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = updated.(Model)
	if retry != nil {
		t.Fatal("submit while in flight should be ignored")
	}

	testutil.RequireSend(t, blocking.createRelease, struct{}{}, 5*time.Second, "releasing CreateBooking")
	message := testutil.RequireReceive(t, results, 5*time.Second, "waiting for submit result")

	updated, _ = model.Update(message)
	model = updated.(Model)

	if len(blocking.createCalls) != 1 {
		t.Fatalf("CreateBooking called %d times, want 1", len(blocking.createCalls))
	}
	notification := model.session.Notification()
	if notification == nil || notification.Kind != booking.NotificationSuccess {
		t.Fatalf("expected success notification, got %+v", notification)
	}
	if !strings.Contains(model.View(), "Booking Confirmed!") {
		t.Error("view should show the success modal")
	}

	// Dismissing the success modal ends the program.
	_, quit := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if quit == nil {
		t.Fatal("dismissing the success modal should quit")
	}
	if _, isQuit := quit().(tea.QuitMsg); !isQuit {
		t.Error("expected QuitMsg on success dismissal")
	}
}

func TestModelSubmitErrorAllowsRetry(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), createErr: errors.New("dial tcp: connection refused")}
	model := loadedModel(t, fake, fake.schedule)

	model = pressSpace(t, model)
	model = completePassenger(t, model)
	model = pressKeys(t, model, "1")

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = updated.(Model)
	if command == nil {
		t.Fatal("submit should produce a command")
	}
	updated, _ = model.Update(command())
	model = updated.(Model)

	notification := model.session.Notification()
	if notification == nil || notification.Kind != booking.NotificationError {
		t.Fatalf("expected error notification, got %+v", notification)
	}
	if !strings.Contains(model.View(), "check your internet connection") {
		t.Error("transport failures should surface the connectivity message")
	}

	// Dismiss and retry: the second attempt issues a fresh call.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	fake.createErr = nil

	updated, command = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = updated.(Model)
	if command == nil {
		t.Fatal("retry should produce a command")
	}
	updated, _ = model.Update(command())
	model = updated.(Model)

	if len(fake.createCalls) != 2 {
		t.Fatalf("CreateBooking called %d times, want 2", len(fake.createCalls))
	}
	if got := model.session.Notification(); got == nil || got.Kind != booking.NotificationSuccess {
		t.Fatalf("expected success after retry, got %+v", got)
	}
}

// completePassenger fills the first roster entry through the form and
// returns with the passengers tab active.
func completePassenger(t *testing.T, model Model) Model {
	t.Helper()
	model = pressKeys(t, model, "2")
	model = press(t, model, tea.KeyEnter)
	model = pressKeys(t, model, "Ada Obi")
	model = press(t, model, tea.KeyEnter)
	model = press(t, model, tea.KeyRight)
	model = press(t, model, tea.KeyEnter)
	model = pressKeys(t, model, "34")
	model = press(t, model, tea.KeyEnter)
	model = press(t, model, tea.KeyRight)
	model = press(t, model, tea.KeyEnter)
	model = pressKeys(t, model, "F")
	model = press(t, model, tea.KeyEnter)
	return model
}

func TestModelView(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), booked: []int{4}}
	model := loadedModel(t, fake, fake.schedule)

	view := model.View()
	if !strings.Contains(view, "Night Express") {
		t.Error("view should contain the bus name")
	}
	if !strings.Contains(view, "[1] Seats") {
		t.Error("view should contain the tab bar")
	}
	if !strings.Contains(view, "[ 1]") {
		t.Error("view should contain seat 1")
	}
	if !strings.Contains(view, "[12]") {
		t.Error("view should contain seat 12")
	}
	if !strings.Contains(view, "No seats selected") {
		t.Error("view should show the empty selection status")
	}
	if !strings.Contains(view, "q quit") {
		t.Error("view should contain help text")
	}

	// Select two seats: the status line shows them with the total.
	model = pressSpace(t, model)
	model = pressKeys(t, model, "l")
	model = pressSpace(t, model)
	view = model.View()
	if !strings.Contains(view, "Seats: 1, 2") {
		t.Error("status should list the selected seats")
	}
	if !strings.Contains(view, "₦6000") {
		t.Error("status should show the running total")
	}

	// The passengers tab renders the roster rows.
	model = pressKeys(t, model, "2")
	view = model.View()
	if !strings.Contains(view, "Seat") || !strings.Contains(view, "Gender") {
		t.Error("passengers view should contain the table header")
	}
}

func TestModelQuit(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	model := loadedModel(t, fake, fake.schedule)

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("q key should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Errorf("expected QuitMsg")
	}
}
