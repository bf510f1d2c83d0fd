// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"errors"

	"github.com/busline-travel/busline/lib/busapi"
)

// NotificationKind classifies a notification for presentation.
type NotificationKind int

const (
	// NotificationSuccess reports a completed booking. Dismissing it
	// ends the session.
	NotificationSuccess NotificationKind = iota
	// NotificationError reports a failed submission attempt.
	NotificationError
	// NotificationWarning reports a local validation failure the user
	// can correct before retrying.
	NotificationWarning
)

// Notification is the transient user-facing outcome of a validation
// check or submission attempt. At most one is active per session;
// raising a new one replaces the old.
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
	Details []string
}

// Notification returns the active notification, or nil when there is
// none.
func (session *Session) Notification() *Notification {
	if session.notification == nil {
		return nil
	}
	copied := *session.notification
	return &copied
}

// DismissNotification clears the active notification. Returns true
// when the dismissal ends the session — only the success notification
// does, matching the navigate-away-on-success behavior of the booking
// screen.
func (session *Session) DismissNotification() bool {
	if session.notification == nil {
		return false
	}
	endSession := session.notification.Kind == NotificationSuccess
	session.notification = nil
	return endSession
}

// raise replaces any active notification.
func (session *Session) raise(notification Notification) {
	session.notification = &notification
}

// submitErrorMessage maps a create-booking failure to the message
// shown in the error notification. A server-produced message is
// surfaced verbatim; a transport failure (no response reached the
// server) gets a connectivity message; anything else falls back to a
// generic retry prompt.
func submitErrorMessage(err error) string {
	if message := busapi.ServerMessage(err); message != "" {
		return message
	}
	if busapi.IsProviderError(err) {
		return "Unable to complete your booking. Please try again."
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "The booking request timed out. Please try again."
	}
	return "Cannot connect to server. Please check your internet connection."
}
