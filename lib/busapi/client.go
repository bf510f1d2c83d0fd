// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package busapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/busline-travel/busline/lib/clock"
)

// DefaultBaseURL is the public instance of the booking service.
const DefaultBaseURL = "https://api.freeprojectapi.com/api/BusBooking"

// maxResponseBytes caps how much of a response body is read. The
// largest legitimate payload (a season's search results) is well under
// this; anything bigger indicates a misbehaving server.
const maxResponseBytes = 8 << 20

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL for API requests, without a trailing
	// slash. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient. Request timeouts are whatever this client
	// enforces; the booking session applies no timeout of its own.
	HTTPClient *http.Client

	// Clock provides time operations for request timing. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the booking service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a booking service client from the given
// configuration. Returns an error if BaseURL is not an absolute
// http(s) URL.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("busapi: base URL must be absolute http(s) (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		clock:      clk,
		logger:     logger,
	}, nil
}

// Locations returns every boarding location the service knows about.
func (client *Client) Locations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := client.get(ctx, "/GetBusLocations", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SearchSchedules returns the schedules running between two locations
// on a travel date (YYYY-MM-DD). Locations are matched by name, the
// way the search form submits them.
func (client *Client) SearchSchedules(ctx context.Context, fromLocation, toLocation, travelDate string) ([]ScheduleSummary, error) {
	query := url.Values{}
	query.Set("fromLocation", fromLocation)
	query.Set("toLocation", toLocation)
	query.Set("travelDate", travelDate)

	var summaries []ScheduleSummary
	if err := client.get(ctx, "/searchBus2?"+query.Encode(), &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Schedule fetches the full schedule record for one bus run.
func (client *Client) Schedule(ctx context.Context, scheduleID int) (Schedule, error) {
	var schedule Schedule
	if err := client.get(ctx, "/GetBusScheduleById?id="+strconv.Itoa(scheduleID), &schedule); err != nil {
		return Schedule{}, err
	}
	return schedule, nil
}

// BookedSeats returns the seat numbers already booked on a schedule.
func (client *Client) BookedSeats(ctx context.Context, scheduleID int) ([]int, error) {
	var seats []int
	if err := client.get(ctx, "/GetBookedSeats?scheduleId="+strconv.Itoa(scheduleID), &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// CreateBooking submits a booking (BookingID zero) and returns the
// server's copy with the assigned booking ID.
func (client *Client) CreateBooking(ctx context.Context, booking Booking) (Booking, error) {
	var created Booking
	if err := client.post(ctx, "/PostBusBooking", booking, &created); err != nil {
		return Booking{}, err
	}
	return created, nil
}

// ListBookings returns every booking made by a customer.
func (client *Client) ListBookings(ctx context.Context, customerID int) ([]Booking, error) {
	var bookings []Booking
	if err := client.get(ctx, "/GetAllBusBookings?custId="+strconv.Itoa(customerID), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking cancels a booking by ID.
func (client *Client) CancelBooking(ctx context.Context, bookingID int) error {
	_, err := client.do(ctx, http.MethodDelete, "/DeleteBusBooking?bookingId="+strconv.Itoa(bookingID), nil)
	return err
}

// get executes a GET request and decodes the JSON response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("busapi: decoding %s response: %w", path, err)
	}
	return nil
}

// post executes a POST request with a JSON body and decodes the JSON
// response into result.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("busapi: decoding %s response: %w", path, err)
		}
	}
	return nil
}

// do executes one request against the service. The path is relative to
// the base URL. For non-GET requests, requestBody is JSON-encoded
// (pass nil for no body). Returns the response body as raw bytes; on
// non-2xx responses, returns a *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	requestURL := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("busapi: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("busapi: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	started := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("busapi: %s %s: %w", method, requestURL, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("busapi: reading response body: %w", err)
	}

	client.logger.Debug("booking service request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"elapsed", client.clock.Now().Sub(started),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}

	return body, nil
}

// parseAPIError builds an *APIError from a status code and response
// body. The service wraps most errors as {"message": "..."}; anything
// else is surfaced as the raw body text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}

	return apiError
}
