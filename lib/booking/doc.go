// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking implements the seat-selection and booking-assembly
// session: the in-memory state machine behind the booking screen.
//
// A Session is scoped to one schedule. It owns three cooperating
// pieces of state:
//
//   - the seat inventory: one Seat per seat number with booked and
//     selected status
//   - the passenger roster: exactly one passenger record per selected
//     seat, kept in sync as seats are toggled
//   - the submission controller: validates the roster, computes the
//     total price, assembles the booking payload, and resolves the
//     provider's answer into a user-facing Notification
//
// All mutation happens through Session methods on a single logical
// thread; the presentation layer reads snapshots and never touches
// state directly. The one suspending operation is the create-booking
// network call, guarded by the submitting flag: BeginSubmit refuses to
// hand out a second payload while one is in flight.
//
// Pricing, inventory, and persistence live on the remote service; the
// session only renders state and validates input before submission.
package booking
