// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// Seat is one seat on the bus for the session's schedule. Booked seats
// are immutable for the session's lifetime; selection is toggled by
// user action.
type Seat struct {
	// SeatNumber is the 1-based seat number.
	SeatNumber int

	// IsBooked is true when another customer already holds this seat.
	// Booked seats never become selectable.
	IsBooked bool

	// IsSelected is true while the user has this seat picked for the
	// booking being assembled.
	IsSelected bool
}

// initializeSeats builds the full seat inventory for a schedule:
// seats numbered 1..totalSeats, none selected, with IsBooked set for
// every number in booked. Re-running discards selection state, which
// is fine because initialization happens once per schedule load.
func initializeSeats(totalSeats int, booked []int) []Seat {
	bookedSet := make(map[int]bool, len(booked))
	for _, seatNumber := range booked {
		bookedSet[seatNumber] = true
	}

	seats := make([]Seat, totalSeats)
	for index := range seats {
		seatNumber := index + 1
		seats[index] = Seat{
			SeatNumber: seatNumber,
			IsBooked:   bookedSet[seatNumber],
		}
	}
	return seats
}

// ToggleSeat flips the selection of one seat and reconciles the
// passenger roster. Returns false without changing anything when the
// seat number is out of range or the seat is already booked — a click
// on a booked seat is a normal user action, not a contract violation.
func (session *Session) ToggleSeat(seatNumber int) bool {
	if seatNumber < 1 || seatNumber > len(session.seats) {
		return false
	}
	seat := &session.seats[seatNumber-1]
	if seat.IsBooked {
		return false
	}

	seat.IsSelected = !seat.IsSelected
	session.reconcileRoster()
	return true
}

// Seats returns a snapshot of the seat inventory in seat-number order.
func (session *Session) Seats() []Seat {
	seats := make([]Seat, len(session.seats))
	copy(seats, session.seats)
	return seats
}

// SelectedSeats returns the currently selected seats in ascending
// seat-number order. The order is significant: it fixes the passenger
// row order and the seat list shown in the success notification.
func (session *Session) SelectedSeats() []Seat {
	var selected []Seat
	for _, seat := range session.seats {
		if seat.IsSelected {
			selected = append(selected, seat)
		}
	}
	return selected
}

// selectedSeatNumbers returns the seat numbers of the selected seats,
// ascending.
func (session *Session) selectedSeatNumbers() []int {
	var numbers []int
	for _, seat := range session.seats {
		if seat.IsSelected {
			numbers = append(numbers, seat.SeatNumber)
		}
	}
	return numbers
}
