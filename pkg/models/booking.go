package models

import (
	"strings"
	"unicode/utf8"
)

// Booking is a reservation of a room for a date and time range.
// Dates are "YYYY-MM-DD", times are zero-padded "HH:MM", so string
// comparison orders both correctly.
type Booking struct {
	ID             int    `json:"id"`
	RoomID         int    `json:"roomId"`
	Date           string `json:"date"`
	TimeStart      string `json:"timeStart"`
	TimeEnd        string `json:"timeEnd"`
	ManagerSurname string `json:"managerSurname"`
	UserName       string `json:"userName"`
	OwnerID        string `json:"ownerId"`
}

// BookingRequest is the body sent to create or update a booking
type BookingRequest struct {
	RoomID         int    `json:"roomId"`
	Date           string `json:"date"`
	TimeStart      string `json:"timeStart"`
	TimeEnd        string `json:"timeEnd"`
	ManagerSurname string `json:"managerSurname"`
}

// ValidationError is a client-side rejection that never reaches the network
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validation outcomes. Messages live here as data so the UI and tests
// share one source of truth.
var (
	ErrFillAllFields   = &ValidationError{"fill all fields"}
	ErrEndBeforeStart  = &ValidationError{"end must be after start"}
	ErrSurnameTooShort = &ValidationError{"surname too short"}
)

// Validate checks the request in a fixed order, failing fast on the
// first violation: fields present, then time order, then surname length.
func (r *BookingRequest) Validate() error {
	if r.Date == "" || r.TimeStart == "" || r.TimeEnd == "" || strings.TrimSpace(r.ManagerSurname) == "" {
		return ErrFillAllFields
	}
	if r.TimeStart >= r.TimeEnd {
		return ErrEndBeforeStart
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.ManagerSurname)) < 2 {
		return ErrSurnameTooShort
	}
	return nil
}

// Normalize trims and uppercases the surname before submission so the
// backend stores one canonical casing
func (r *BookingRequest) Normalize() {
	r.ManagerSurname = strings.ToUpper(strings.TrimSpace(r.ManagerSurname))
}
