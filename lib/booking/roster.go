// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/busline-travel/busline/lib/busapi"
)

// Field identifies one editable passenger field.
type Field int

const (
	// FieldName is the passenger's full name.
	FieldName Field = iota
	// FieldAge is the passenger's age, entered as text and coerced to
	// a positive integer.
	FieldAge
	// FieldGender is the passenger's gender.
	FieldGender
)

// reconcileRoster restores the roster invariant after a seat toggle:
// the set of roster seat numbers equals the set of selected seat
// numbers. Entries for deselected seats are dropped — together with
// anything the user already typed into them — and fresh blank entries
// are appended for newly selected seats. Entries for still-selected
// seats keep their field values. The result follows ascending seat
// order regardless of the toggle sequence.
func (session *Session) reconcileRoster() {
	selected := session.selectedSeatNumbers()

	existing := make(map[int]busapi.Passenger, len(session.roster))
	for _, passenger := range session.roster {
		existing[passenger.SeatNo] = passenger
	}

	roster := make([]busapi.Passenger, 0, len(selected))
	for _, seatNumber := range selected {
		if passenger, ok := existing[seatNumber]; ok {
			roster = append(roster, passenger)
			continue
		}
		roster = append(roster, busapi.Passenger{SeatNo: seatNumber})
	}
	session.roster = roster
}

// Passengers returns a snapshot of the roster in seat-number order.
func (session *Session) Passengers() []busapi.Passenger {
	roster := make([]busapi.Passenger, len(session.roster))
	copy(roster, session.roster)
	return roster
}

// UpdateField replaces one field of the roster entry at index. The
// value is user-typed text; FieldAge is coerced to a positive integer
// and zeroed when the text is not one, keeping the roster incomplete
// until the user fixes it.
//
// An out-of-range index or unknown field is a contract violation — the
// presentation layer only renders rows that exist — so this panics
// rather than absorbing the bug.
func (session *Session) UpdateField(index int, field Field, value string) {
	if index < 0 || index >= len(session.roster) {
		panic(fmt.Sprintf("booking: UpdateField index %d out of range (roster has %d entries)", index, len(session.roster)))
	}

	switch field {
	case FieldName:
		session.roster[index].PassengerName = strings.TrimSpace(value)
	case FieldAge:
		age, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || age <= 0 {
			age = 0
		}
		session.roster[index].Age = age
	case FieldGender:
		session.roster[index].Gender = strings.TrimSpace(value)
	default:
		panic(fmt.Sprintf("booking: UpdateField unknown field %d", field))
	}
}

// IsComplete reports whether every roster entry has a name, a positive
// age, a gender, and a seat. An empty roster is complete under this
// predicate's vacuous evaluation; the submission controller gates on
// "at least one seat selected" separately, so both checks are applied
// before a booking goes out.
func (session *Session) IsComplete() bool {
	for _, passenger := range session.roster {
		if passenger.PassengerName == "" || passenger.Age <= 0 ||
			passenger.Gender == "" || passenger.SeatNo <= 0 {
			return false
		}
	}
	return true
}
