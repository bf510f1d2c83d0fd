// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/busline-travel/busline/lib/busapi"
)

// BeginSubmit validates the session and, when everything checks out,
// assembles the booking payload and enters the submitting state.
//
// Returns nil in three cases: a submission is already in flight (the
// call is ignored, never allowed to issue a second network call), no
// seats are selected, or the roster is incomplete. The latter two
// raise a warning notification before any network activity.
//
// The payload is assembled fresh on every attempt: booking ID zero,
// the session's customer and schedule, the roster in seat-number
// order, and the current time (UTC, RFC 3339) as the booking date.
func (session *Session) BeginSubmit() *busapi.Booking {
	if session.submitting {
		return nil
	}

	if len(session.selectedSeatNumbers()) == 0 {
		session.raise(Notification{
			Kind:    NotificationWarning,
			Title:   "No Seats Selected",
			Message: "Please select at least one seat before proceeding.",
		})
		return nil
	}

	if !session.IsComplete() {
		session.raise(Notification{
			Kind:    NotificationWarning,
			Title:   "Incomplete Details",
			Message: "Please fill in all passenger details before proceeding.",
		})
		return nil
	}

	booking := &busapi.Booking{
		BookingID:   0,
		CustID:      session.customerID,
		BookingDate: session.clock.Now().UTC().Format(time.RFC3339),
		ScheduleID:  session.scheduleID,
		Passengers:  session.Passengers(),
	}

	session.submitting = true
	return booking
}

// FinishSubmit leaves the submitting state and resolves the provider's
// answer into a notification: success details on a created booking, a
// classified error message otherwise. No retry happens here — every
// retry is a fresh user action through BeginSubmit.
func (session *Session) FinishSubmit(created busapi.Booking, err error) {
	session.submitting = false

	if err != nil {
		session.logger.Warn("booking submission failed",
			"schedule", session.scheduleID,
			"error", err,
		)
		session.raise(Notification{
			Kind:    NotificationError,
			Title:   "Booking Failed",
			Message: submitErrorMessage(err),
		})
		return
	}

	seatNumbers := make([]string, 0, len(session.roster))
	for _, passenger := range session.roster {
		seatNumbers = append(seatNumbers, strconv.Itoa(passenger.SeatNo))
	}

	session.logger.Info("booking confirmed",
		"booking", created.BookingID,
		"schedule", session.scheduleID,
		"passengers", len(session.roster),
	)
	session.raise(Notification{
		Kind:    NotificationSuccess,
		Title:   "Booking Confirmed!",
		Message: "Your bus ticket has been successfully booked.",
		Details: []string{
			fmt.Sprintf("Booking ID: #%d", created.BookingID),
			"Seats: " + strings.Join(seatNumbers, ", "),
			fmt.Sprintf("Passengers: %d", len(session.roster)),
			"Total Amount: ₦" + formatAmount(session.Total()),
		},
	})
}

// Submit runs the full submission protocol synchronously: validate,
// assemble, call the provider, resolve. The outcome lands in the
// session's notification rather than a return value — nothing
// propagates past the submission controller.
//
// Interactive callers that must keep an event loop responsive use
// BeginSubmit and FinishSubmit directly, performing the provider call
// between them on their own terms.
func (session *Session) Submit(ctx context.Context) {
	booking := session.BeginSubmit()
	if booking == nil {
		return
	}
	created, err := session.provider.CreateBooking(ctx, *booking)
	session.FinishSubmit(created, err)
}

// formatAmount renders a price without trailing zeros (3000, not
// 3000.00) while keeping fractional prices exact.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
