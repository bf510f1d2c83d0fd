// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package busapi is a typed HTTP client for the remote bus booking
// service. It covers the full provider surface the client consumes:
// location and schedule lookup, seat availability, booking creation,
// booking history, and cancellation.
//
// All business logic (pricing, inventory, persistence) lives on the
// server; this package only moves typed values over the wire. Non-2xx
// responses become a *APIError carrying the status code and the
// server's message; transport failures (no response reached the
// server) stay plain wrapped errors so callers can tell the two apart
// with errors.As.
package busapi
