// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package busapi

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the booking service.
// The service returns either a JSON object with a "message" field or a
// bare text body; Message carries whichever was present.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from the server. Empty when the
	// response body carried nothing usable.
	Message string
}

func (err *APIError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("busapi: HTTP %d", err.StatusCode)
	}
	return fmt.Sprintf("busapi: HTTP %d: %s", err.StatusCode, err.Message)
}

// IsNotFound reports whether err is a 404 response from the booking
// service (unknown schedule or booking ID).
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsValidation reports whether err is a 400 or 422 response, meaning
// the server rejected the request payload.
func IsValidation(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == 400 || apiError.StatusCode == 422
}

// ServerMessage returns the server-supplied message from err when err
// is an *APIError with a non-empty message, and "" otherwise. The
// booking session surfaces this verbatim in error notifications.
func ServerMessage(err error) string {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError.Message
	}
	return ""
}

// IsProviderError reports whether err is a response the server
// actually produced (as opposed to a transport failure where no
// response arrived).
func IsProviderError(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError)
}
