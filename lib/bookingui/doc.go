// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingui implements the interactive booking screen: a
// bubbletea TUI over a [booking.Session]. The seat map and passenger
// roster are two tabs of the same screen; a submission runs as a
// background command so the event loop stays responsive, and its
// outcome surfaces as a modal overlay.
//
// The model owns no booking state of its own. Every seat toggle,
// field edit, and submission routes through the session, so the
// invariants enforced there (roster follows selection, one submission
// in flight, validation before network) hold no matter how the user
// drives the UI.
package bookingui
