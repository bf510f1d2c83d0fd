// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/busline-travel/busline/lib/busapi"
	"github.com/busline-travel/busline/lib/clock"
)

// Provider is the slice of the booking service a session depends on.
// *busapi.Client satisfies it; tests substitute fakes.
type Provider interface {
	// Schedule fetches the schedule record for one bus run.
	Schedule(ctx context.Context, scheduleID int) (busapi.Schedule, error)

	// BookedSeats returns the seat numbers already booked on a
	// schedule.
	BookedSeats(ctx context.Context, scheduleID int) ([]int, error)

	// CreateBooking submits a booking and returns the server's copy
	// with the assigned booking ID.
	CreateBooking(ctx context.Context, booking busapi.Booking) (busapi.Booking, error)
}

// Session is the booking session for one schedule: seat inventory,
// passenger roster, and submission state. Construct one per booking
// screen with NewSession, call Load, then drive it with ToggleSeat,
// UpdateField, and the submission methods.
//
// Sessions are not safe for concurrent use. All mutation is expected
// to happen on a single logical thread (the UI event loop); the
// submitting flag is the only guard needed around the one suspending
// operation, the create-booking call.
type Session struct {
	provider Provider
	clock    clock.Clock
	logger   *slog.Logger

	scheduleID int
	customerID int

	schedule *busapi.Schedule
	seats    []Seat
	roster   []busapi.Passenger

	submitting   bool
	notification *Notification
}

// NewSession creates a session for one schedule. The customer ID is
// the fixed identity bookings are filed under. Clock and logger fall
// back to clock.Real() and slog.Default() when nil.
func NewSession(provider Provider, scheduleID, customerID int, clk clock.Clock, logger *slog.Logger) *Session {
	if provider == nil {
		panic("booking: NewSession requires a provider")
	}
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		provider:   provider,
		clock:      clk,
		logger:     logger,
		scheduleID: scheduleID,
		customerID: customerID,
	}
}

// Load fetches the schedule and the already-booked seat list, then
// initializes the seat inventory. Any prior selection state is
// discarded; Load runs once per schedule view.
func (session *Session) Load(ctx context.Context) error {
	schedule, err := session.provider.Schedule(ctx, session.scheduleID)
	if err != nil {
		return fmt.Errorf("loading schedule %d: %w", session.scheduleID, err)
	}

	booked, err := session.provider.BookedSeats(ctx, session.scheduleID)
	if err != nil {
		return fmt.Errorf("loading booked seats for schedule %d: %w", session.scheduleID, err)
	}

	session.schedule = &schedule
	session.seats = initializeSeats(schedule.TotalSeats, booked)
	session.roster = nil

	session.logger.Debug("booking session loaded",
		"schedule", session.scheduleID,
		"totalSeats", schedule.TotalSeats,
		"bookedSeats", len(booked),
	)
	return nil
}

// Schedule returns the loaded schedule, or nil before Load succeeds.
func (session *Session) Schedule() *busapi.Schedule {
	if session.schedule == nil {
		return nil
	}
	copied := *session.schedule
	return &copied
}

// ScheduleID returns the schedule this session is scoped to.
func (session *Session) ScheduleID() int { return session.scheduleID }

// Provider returns the provider the session was created with.
// Interactive callers use it to perform the network half of the
// BeginSubmit/FinishSubmit protocol on their own event loop.
func (session *Session) Provider() Provider { return session.provider }

// Submitting reports whether a create-booking call is in flight.
func (session *Session) Submitting() bool { return session.submitting }

// Total returns the price of the current selection: selected seat
// count times the schedule's per-seat price. Zero before the schedule
// is loaded. The price is carried as-is, with no rounding beyond the
// unit price's own precision.
func (session *Session) Total() float64 {
	if session.schedule == nil {
		return 0
	}
	return float64(len(session.selectedSeatNumbers())) * session.schedule.Price
}
