package booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type BookingStatus int

const (
	StatusConfirmed BookingStatus = iota
	StatusCancelled
	StatusCompleted
	StatusPending
)

func (s BookingStatus) Valid() bool {
	return s >= StatusConfirmed && s <= StatusPending
}

func (s BookingStatus) String() string {
	switch s {
	case StatusConfirmed:
		return "Confirmed"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	case StatusPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// Booking is one reservation record. It is immutable once constructed; a
// cancellation replaces the stored record with a Cancelled copy rather than
// mutating it. The room is referenced by number only and is resolved against
// the inventory whenever current state is needed.
type Booking struct {
	ID         string        `json:"id"`
	GuestName  string        `json:"guest_name"`
	RoomNumber string        `json:"room_number"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
}

// NewBooking validates and builds a booking record. CheckOut must be strictly
// after CheckIn.
func NewBooking(
	id, guestName, roomNumber string,
	checkIn, checkOut time.Time,
	totalPrice float64,
	status BookingStatus,
) (Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Booking{}, ErrEmptyBookingID
	}

	guestName = strings.TrimSpace(guestName)
	if utf8.RuneCountInString(guestName) < minGuestNameLen {
		return Booking{}, ErrShortGuestName
	}

	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return Booking{}, ErrEmptyRoomNumber
	}

	if checkIn.IsZero() || checkOut.IsZero() {
		return Booking{}, ErrMissingDate
	}

	if !checkOut.After(checkIn) {
		return Booking{}, ErrCheckOutNotAfterCheckIn
	}

	if totalPrice < 0 {
		return Booking{}, ErrNegativePrice
	}

	if !status.Valid() {
		return Booking{}, ErrInvalidStatus
	}

	return Booking{
		ID:         id,
		GuestName:  guestName,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: totalPrice,
		Status:     status,
	}, nil
}

// Nights returns the whole calendar days between check-in and check-out.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / hoursPerDay)
}

// Equal reports whether two records denote the same booking: id, guest name
// and check-in date all match. Price, status and room are deliberately
// ignored, so a Cancelled copy still equals the record it replaced.
func (b Booking) Equal(other Booking) bool {
	return b.ID == other.ID &&
		b.GuestName == other.GuestName &&
		b.CheckIn.Equal(other.CheckIn)
}

func (b Booking) withStatus(status BookingStatus) Booking {
	b.Status = status

	return b
}

func (b Booking) String() string {
	return fmt.Sprintf("Booking{id=%s, guest=%s, room=%s, checkIn=%s, checkOut=%s, price=%.2f, status=%s}",
		b.ID, b.GuestName, b.RoomNumber,
		b.CheckIn.Format(time.DateOnly), b.CheckOut.Format(time.DateOnly),
		b.TotalPrice, b.Status)
}

type EventKind string

const (
	EventBookingCreated   EventKind = "booking_created"
	EventBookingCancelled EventKind = "booking_cancelled"
)

// Event is an append-only record of one engine state change, stamped with
// whatever tracing context the caller carried.
type Event struct {
	ID        string
	BookingID string
	Kind      EventKind
	TraceID   string
	RequestID string
	CreatedAt time.Time
}

// CreateBookingInput carries the raw arguments of a booking request. Dates
// are calendar dates; any time-of-day component is dropped before use.
type CreateBookingInput struct {
	BookingID  string    `json:"booking_id"`
	GuestName  string    `json:"guest_name"`
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
}

const (
	minGuestNameLen = 2
	hoursPerDay     = 24
)

// Date builds the calendar date used throughout the engine: midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func truncateToDay(t time.Time) time.Time {
	return t.UTC().Truncate(hoursPerDay * time.Hour)
}
