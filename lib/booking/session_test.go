// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/busline-travel/busline/lib/busapi"
	"github.com/busline-travel/busline/lib/clock"
)

// fakeProvider is an in-memory Provider. CreateBooking records every
// payload it receives and answers with createResult/createErr.
type fakeProvider struct {
	schedule    busapi.Schedule
	scheduleErr error
	booked      []int
	bookedErr   error

	createCalls  []busapi.Booking
	createResult busapi.Booking
	createErr    error
}

func (fake *fakeProvider) Schedule(ctx context.Context, scheduleID int) (busapi.Schedule, error) {
	return fake.schedule, fake.scheduleErr
}

func (fake *fakeProvider) BookedSeats(ctx context.Context, scheduleID int) ([]int, error) {
	return fake.booked, fake.bookedErr
}

func (fake *fakeProvider) CreateBooking(ctx context.Context, booking busapi.Booking) (busapi.Booking, error) {
	fake.createCalls = append(fake.createCalls, booking)
	if fake.createErr != nil {
		return busapi.Booking{}, fake.createErr
	}
	result := fake.createResult
	if result.BookingID == 0 {
		result = booking
		result.BookingID = 1
	}
	return result, nil
}

// loadedSession builds a session against the fake and loads it,
// failing the test on error.
func loadedSession(t *testing.T, fake *fakeProvider) *Session {
	t.Helper()
	fixed := clock.Fake(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	session := NewSession(fake, fake.schedule.ScheduleID, 12179, fixed, nil)
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return session
}

func testSchedule() busapi.Schedule {
	return busapi.Schedule{
		ScheduleID: 17,
		BusName:    "Night Express",
		TotalSeats: 40,
		Price:      3000,
	}
}

func TestLoadInitializesInventory(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), booked: []int{5, 6}}
	session := loadedSession(t, fake)

	seats := session.Seats()
	if len(seats) != 40 {
		t.Fatalf("len(seats) = %d, want 40", len(seats))
	}
	for _, seat := range seats {
		wantBooked := seat.SeatNumber == 5 || seat.SeatNumber == 6
		if seat.IsBooked != wantBooked {
			t.Errorf("seat %d IsBooked = %v, want %v", seat.SeatNumber, seat.IsBooked, wantBooked)
		}
		if seat.IsSelected {
			t.Errorf("seat %d selected after Load", seat.SeatNumber)
		}
	}
}

func TestLoadPropagatesScheduleError(t *testing.T) {
	fake := &fakeProvider{scheduleErr: errors.New("boom")}
	session := NewSession(fake, 17, 12179, nil, nil)
	if err := session.Load(context.Background()); err == nil {
		t.Fatal("expected Load error when schedule fetch fails")
	}
}

func TestToggleBookedSeatRejected(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), booked: []int{5, 6}}
	session := loadedSession(t, fake)

	if session.ToggleSeat(5) {
		t.Error("ToggleSeat(5) = true for a booked seat")
	}
	for _, seat := range session.Seats() {
		if seat.IsSelected {
			t.Errorf("seat %d selected after rejected toggle", seat.SeatNumber)
		}
	}
	if len(session.Passengers()) != 0 {
		t.Errorf("roster has %d entries after rejected toggle", len(session.Passengers()))
	}
}

func TestToggleOutOfRangeRejected(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	session := loadedSession(t, fake)

	if session.ToggleSeat(0) {
		t.Error("ToggleSeat(0) = true")
	}
	if session.ToggleSeat(41) {
		t.Error("ToggleSeat(41) = true")
	}
}

// rosterSeatNumbers extracts the seat numbers from the roster in order.
func rosterSeatNumbers(session *Session) []int {
	var numbers []int
	for _, passenger := range session.Passengers() {
		numbers = append(numbers, passenger.SeatNo)
	}
	return numbers
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for index := range a {
		if a[index] != b[index] {
			return false
		}
	}
	return true
}

func TestRosterTracksSelection(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule(), booked: []int{5, 6}}
	session := loadedSession(t, fake)

	// Toggle in non-ascending order; the roster must still come out
	// in ascending seat order.
	for _, seatNumber := range []int{7, 2, 10, 1} {
		if !session.ToggleSeat(seatNumber) {
			t.Fatalf("ToggleSeat(%d) rejected", seatNumber)
		}
	}
	if got, want := rosterSeatNumbers(session), []int{1, 2, 7, 10}; !equalInts(got, want) {
		t.Errorf("roster seats = %v, want %v", got, want)
	}

	session.ToggleSeat(2)
	if got, want := rosterSeatNumbers(session), []int{1, 7, 10}; !equalInts(got, want) {
		t.Errorf("roster seats after deselect = %v, want %v", got, want)
	}

	// The invariant holds after an arbitrary toggle sequence.
	selected := make(map[int]bool)
	for _, seat := range session.SelectedSeats() {
		selected[seat.SeatNumber] = true
	}
	for _, seatNumber := range rosterSeatNumbers(session) {
		if !selected[seatNumber] {
			t.Errorf("roster entry for unselected seat %d", seatNumber)
		}
	}
	if len(selected) != len(session.Passengers()) {
		t.Errorf("roster has %d entries, %d seats selected", len(session.Passengers()), len(selected))
	}
}

func TestEditsSurviveUnrelatedToggles(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	session := loadedSession(t, fake)

	session.ToggleSeat(3)
	session.UpdateField(0, FieldName, "Ada Obi")
	session.UpdateField(0, FieldAge, "31")

	session.ToggleSeat(8)
	session.ToggleSeat(8)

	passengers := session.Passengers()
	if len(passengers) != 1 {
		t.Fatalf("roster has %d entries, want 1", len(passengers))
	}
	if passengers[0].PassengerName != "Ada Obi" || passengers[0].Age != 31 {
		t.Errorf("passenger = %+v, field edits lost on unrelated toggle", passengers[0])
	}
}

func TestDeselectionDiscardsPassengerData(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	session := loadedSession(t, fake)

	session.ToggleSeat(3)
	session.UpdateField(0, FieldName, "Ada Obi")
	session.UpdateField(0, FieldAge, "31")
	session.UpdateField(0, FieldGender, "female")

	// Deselect then reselect. The entered data is gone — discarding on
	// deselect is deliberate, so the test asserts the loss.
	session.ToggleSeat(3)
	if len(session.Passengers()) != 0 {
		t.Fatalf("roster not empty after deselect: %v", session.Passengers())
	}
	session.ToggleSeat(3)

	passengers := session.Passengers()
	if len(passengers) != 1 {
		t.Fatalf("roster has %d entries, want 1", len(passengers))
	}
	fresh := passengers[0]
	if fresh.PassengerName != "" || fresh.Age != 0 || fresh.Gender != "" {
		t.Errorf("reselected seat kept old data: %+v", fresh)
	}
	if fresh.SeatNo != 3 {
		t.Errorf("fresh entry SeatNo = %d, want 3", fresh.SeatNo)
	}
}

func TestUpdateFieldAgeCoercion(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	session := loadedSession(t, fake)
	session.ToggleSeat(1)

	session.UpdateField(0, FieldAge, "31")
	if got := session.Passengers()[0].Age; got != 31 {
		t.Errorf("Age = %d, want 31", got)
	}

	session.UpdateField(0, FieldAge, "not a number")
	if got := session.Passengers()[0].Age; got != 0 {
		t.Errorf("Age after bad input = %d, want 0", got)
	}

	session.UpdateField(0, FieldAge, "-4")
	if got := session.Passengers()[0].Age; got != 0 {
		t.Errorf("Age after negative input = %d, want 0", got)
	}
}

func TestUpdateFieldOutOfRangePanics(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	session := loadedSession(t, fake)

	defer func() {
		if recover() == nil {
			t.Error("UpdateField on empty roster did not panic")
		}
	}()
	session.UpdateField(0, FieldName, "nobody")
}

func TestIsComplete(t *testing.T) {
	fake := &fakeProvider{schedule: testSchedule()}
	session := loadedSession(t, fake)

	session.ToggleSeat(1)
	session.ToggleSeat(2)

	if session.IsComplete() {
		t.Error("IsComplete = true with blank roster entries")
	}

	session.UpdateField(0, FieldName, "Ada Obi")
	session.UpdateField(0, FieldAge, "31")
	session.UpdateField(0, FieldGender, "female")
	if session.IsComplete() {
		t.Error("IsComplete = true with one entry still blank")
	}

	session.UpdateField(1, FieldName, "Emeka Obi")
	session.UpdateField(1, FieldAge, "34")
	session.UpdateField(1, FieldGender, "male")
	if !session.IsComplete() {
		t.Error("IsComplete = false with every entry filled")
	}
}
