// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

package busapi

// Location is a boarding or destination point served by the booking
// service.
type Location struct {
	LocationID   int    `json:"locationId"`
	LocationName string `json:"locationName"`
}

// ScheduleSummary is one row of a schedule search result. It carries
// the denormalized display fields (location names, vendor) that the
// full Schedule payload omits.
type ScheduleSummary struct {
	ScheduleID       int     `json:"scheduleId"`
	BusName          string  `json:"busName"`
	BusVehicleNo     string  `json:"busVehicleNo"`
	FromLocationName string  `json:"fromLocationName"`
	ToLocationName   string  `json:"toLocationName"`
	VendorID         int     `json:"vendorId"`
	VendorName       string  `json:"vendorName"`
	ScheduleDate     string  `json:"scheduleDate"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime"`
	Price            float64 `json:"price"`
	TotalSeats       int     `json:"totalSeats"`
	AvailableSeats   int     `json:"availableSeats"`
}

// Schedule identifies a specific bus run: one vehicle between two
// locations at a fixed date and time with a fixed per-seat price.
// Immutable for the lifetime of a booking session.
type Schedule struct {
	ScheduleID    int     `json:"scheduleId"`
	VendorID      int     `json:"vendorId"`
	BusName       string  `json:"busName"`
	BusVehicleNo  string  `json:"busVehicleNo"`
	FromLocation  int     `json:"fromLocation"`
	ToLocation    int     `json:"toLocation"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	ScheduleDate  string  `json:"scheduleDate"`
	Price         float64 `json:"price"`
	TotalSeats    int     `json:"totalSeats"`
}

// Passenger is one passenger record inside a booking. PassengerID and
// BookingID are zero until the server assigns them.
type Passenger struct {
	PassengerID   int    `json:"passengerId"`
	BookingID     int    `json:"bookingId"`
	PassengerName string `json:"passengerName"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	SeatNo        int    `json:"seatNo"`
}

// Booking is a reservation of one or more seats on a schedule for
// named passengers. Sent with BookingID zero; the server's response
// carries the assigned ID. BookingDate is an RFC 3339 timestamp.
type Booking struct {
	BookingID   int         `json:"bookingId"`
	CustID      int         `json:"custId"`
	BookingDate string      `json:"bookingDate"`
	ScheduleID  int         `json:"scheduleId"`
	Passengers  []Passenger `json:"busBookingPassengers"`
}
