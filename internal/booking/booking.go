// Package booking is the availability and booking engine: it validates
// booking requests, detects date-range conflicts against confirmed
// reservations, computes price, and keeps room occupancy in sync with the
// reservation ledger. It is the sole writer of reservation state and of room
// status after initial placement.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/trace"

	"github.com/stayforge/hotelier/internal/hotel"
	"github.com/stayforge/hotelier/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type inventory interface {
	RoomByNumber(number string) (hotel.Room, error)
	SetRoomStatus(number string, status hotel.RoomStatus) error
}

type ledgerReader interface {
	BookingByID(ctx context.Context, id string) (Booking, error)
	Bookings(ctx context.Context) ([]Booking, error)
	BookingsForRoom(ctx context.Context, roomNumber string) ([]Booking, error)
}

type ledgerWriter interface {
	AppendBooking(ctx context.Context, b Booking) error
	ReplaceBooking(ctx context.Context, b Booking) error
	AppendEvent(ctx context.Context, e Event) error
}

type ledger interface {
	ledgerReader
	ledgerWriter
}

// Manager serializes all reservation writes for one hotel. Its lock spans the
// room lookup, the conflict scan, the ledger append and the status flip, so
// two concurrent requests cannot both pass the scan for the same room.
type Manager struct {
	mu          sync.RWMutex
	l           *logger.Logger
	inventory   inventory
	ledger      ledger
	idGenerator idGenerator
}

func New(l *logger.Logger, inv inventory, ledger ledger, idGenerator idGenerator) *Manager {
	return &Manager{
		l:           l,
		inventory:   inv,
		ledger:      ledger,
		idGenerator: idGenerator,
	}
}

func (in *CreateBookingInput) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(in.BookingID) == "" {
		inputErr.addError("bookingId", "provide bookingId")
	}

	guestName := strings.TrimSpace(in.GuestName)

	if guestName == "" {
		inputErr.addError("guestName", "provide guestName")
	} else if utf8.RuneCountInString(guestName) < minGuestNameLen {
		inputErr.addError("guestName", "guestName must be at least 2 characters")
	}

	if strings.TrimSpace(in.RoomNumber) == "" {
		inputErr.addError("roomNumber", "provide roomNumber")
	}

	if in.CheckIn.IsZero() {
		inputErr.addError("checkIn", "provide checkIn date")
	}

	if in.CheckOut.IsZero() {
		inputErr.addError("checkOut", "provide checkOut date")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (in *CreateBookingInput) normalize() {
	in.BookingID = strings.TrimSpace(in.BookingID)
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.CheckIn = truncateToDay(in.CheckIn)
	in.CheckOut = truncateToDay(in.CheckOut)
}

// CreateBooking validates the request, checks the room's current status and
// the reservation ledger for conflicts, and on success appends a Confirmed
// booking and flips the room to Occupied as one atomic unit. A rejected
// request leaves inventory and ledger untouched.
func (m *Manager) CreateBooking(ctx context.Context, input CreateBookingInput) (Booking, error) {
	if err := input.validate(); err != nil {
		return Booking{}, err
	}

	input.normalize()

	today := truncateToDay(time.Now())
	if input.CheckIn.Before(today) {
		return Booking{}, newInvalidBookingError(
			"check-in date %v is in the past", input.CheckIn.Format(time.DateOnly),
		)
	}

	if !input.CheckOut.After(input.CheckIn) {
		return Booking{}, newInvalidBookingError("check-out date must be after check-in date")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	room, err := m.inventory.RoomByNumber(input.RoomNumber)
	if err != nil {
		if errors.Is(err, hotel.ErrRoomNotFound) {
			return Booking{}, newInvalidBookingError("room not found: %v", input.RoomNumber)
		}

		return Booking{}, fmt.Errorf("look up room %v: %w", input.RoomNumber, err)
	}

	// An occupied room can still take a disjoint future stay; the conflict
	// scan decides. Maintenance and Reserved block outright.
	if room.Status == hotel.StatusMaintenance || room.Status == hotel.StatusReserved {
		notAvailableErr := newNotAvailableError(room.Number)
		notAvailableErr.addStatus(room.Status)

		return Booking{}, notAvailableErr
	}

	free, err := m.roomFreeForDates(ctx, room.Number, input.CheckIn, input.CheckOut)
	if err != nil {
		return Booking{}, fmt.Errorf("scan bookings for room %v: %w", room.Number, err)
	}

	if !free {
		notAvailableErr := newNotAvailableError(room.Number)
		notAvailableErr.addDateConflict(
			input.CheckIn.Format(time.DateOnly),
			input.CheckOut.Format(time.DateOnly),
		)

		return Booking{}, notAvailableErr
	}

	nights := int(input.CheckOut.Sub(input.CheckIn).Hours() / hoursPerDay)

	totalPrice, err := room.TotalCost(nights)
	if err != nil {
		return Booking{}, fmt.Errorf("price %v nights for room %v: %w", nights, room.Number, err)
	}

	b, err := NewBooking(
		input.BookingID,
		input.GuestName,
		room.Number,
		input.CheckIn,
		input.CheckOut,
		totalPrice,
		StatusConfirmed,
	)
	if err != nil {
		return Booking{}, fmt.Errorf("build booking %v: %w", input.BookingID, err)
	}

	if err := m.inventory.SetRoomStatus(room.Number, hotel.StatusOccupied); err != nil {
		return Booking{}, fmt.Errorf("mark room %v occupied: %w", room.Number, err)
	}

	if err := m.ledger.AppendBooking(ctx, b); err != nil {
		if revertErr := m.inventory.SetRoomStatus(room.Number, room.Status); revertErr != nil {
			m.l.LogErrorf("Could not revert status of room %v after failed append: %v", room.Number, revertErr.Error())
		}

		return Booking{}, fmt.Errorf("append booking %v to ledger: %w", b.ID, err)
	}

	m.recordEvent(ctx, EventBookingCreated, b.ID)

	return b, nil
}

// IsRoomAvailableForDates reports whether no confirmed booking for the room
// conflicts with the requested range. Ranges that merely touch on a boundary
// date conflict: an existing check-out day equal to a new check-in day is not
// allowed back to back.
func (m *Manager) IsRoomAvailableForDates(
	ctx context.Context,
	roomNumber string,
	checkIn, checkOut time.Time,
) (bool, error) {
	inputErr := newInputError()

	if strings.TrimSpace(roomNumber) == "" {
		inputErr.addError("roomNumber", "provide roomNumber")
	}

	if checkIn.IsZero() {
		inputErr.addError("checkIn", "provide checkIn date")
	}

	if checkOut.IsZero() {
		inputErr.addError("checkOut", "provide checkOut date")
	}

	if inputErr.fieldsCount() > 0 {
		return false, inputErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.roomFreeForDates(ctx, strings.TrimSpace(roomNumber), truncateToDay(checkIn), truncateToDay(checkOut))
}

func (m *Manager) roomFreeForDates(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) (bool, error) {
	bookings, err := m.ledger.BookingsForRoom(ctx, roomNumber)
	if err != nil {
		return false, fmt.Errorf("get bookings for room %v from ledger: %w", roomNumber, err)
	}

	for _, b := range bookings {
		if b.Status != StatusConfirmed {
			continue
		}

		if !checkOut.Before(b.CheckIn) && !checkIn.After(b.CheckOut) {
			return false, nil
		}
	}

	return true, nil
}

// CancelBooking flips the booked room back to Available and replaces the
// stored record with a Cancelled copy. It returns false without error when
// the booking is unknown or already cancelled.
func (m *Manager) CancelBooking(ctx context.Context, bookingID string) (bool, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		inputErr := newInputError()
		inputErr.addError("bookingId", "provide bookingId")

		return false, inputErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, err := m.ledger.BookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("get booking %v from ledger: %w", bookingID, err)
	}

	if b.Status == StatusCancelled {
		return false, nil
	}

	if err := m.inventory.SetRoomStatus(b.RoomNumber, hotel.StatusAvailable); err != nil {
		// The room may have been removed from the inventory since the
		// booking was taken; the record is still cancelled.
		if !errors.Is(err, hotel.ErrRoomNotFound) {
			return false, fmt.Errorf("release room %v: %w", b.RoomNumber, err)
		}

		m.l.LogInfo("Room %v no longer in inventory, cancelling booking %v without status flip", b.RoomNumber, b.ID)
	}

	if err := m.ledger.ReplaceBooking(ctx, b.withStatus(StatusCancelled)); err != nil {
		return false, fmt.Errorf("replace booking %v in ledger: %w", b.ID, err)
	}

	m.recordEvent(ctx, EventBookingCancelled, b.ID)

	return true, nil
}

// BookingByID returns the first booking with a matching id.
func (m *Manager) BookingByID(ctx context.Context, bookingID string) (Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		inputErr := newInputError()
		inputErr.addError("bookingId", "provide bookingId")

		return Booking{}, inputErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	b, err := m.ledger.BookingByID(ctx, bookingID)
	if err != nil {
		return Booking{}, err
	}

	return b, nil
}

// BookingsByGuest returns every booking whose guest name matches, ignoring
// case, in insertion order.
func (m *Manager) BookingsByGuest(ctx context.Context, guestName string) ([]Booking, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		inputErr := newInputError()
		inputErr.addError("guestName", "provide guestName")

		return nil, inputErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings, err := m.ledger.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings from ledger: %w", err)
	}

	var out []Booking

	for _, b := range bookings {
		if strings.EqualFold(b.GuestName, guestName) {
			out = append(out, b)
		}
	}

	return out, nil
}

// ActiveBookings returns every booking with status Confirmed.
func (m *Manager) ActiveBookings(ctx context.Context) ([]Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings, err := m.ledger.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings from ledger: %w", err)
	}

	var out []Booking

	for _, b := range bookings {
		if b.Status == StatusConfirmed {
			out = append(out, b)
		}
	}

	return out, nil
}

// AllBookings returns a snapshot of every booking ever taken, in insertion
// order. Cancelled bookings are retained for history.
func (m *Manager) AllBookings(ctx context.Context) ([]Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings, err := m.ledger.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings from ledger: %w", err)
	}

	return bookings, nil
}

func (m *Manager) TotalBookings(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings, err := m.ledger.Bookings(ctx)
	if err != nil {
		return 0, fmt.Errorf("get bookings from ledger: %w", err)
	}

	return len(bookings), nil
}

func (m *Manager) recordEvent(ctx context.Context, kind EventKind, bookingID string) {
	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		m.l.LogErrorf("Could not generate id for %v event of booking %v: %v", kind, bookingID, err.Error())

		return
	}

	event := Event{
		ID:        id,
		BookingID: bookingID,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		event.TraceID = sc.TraceID().String()
	}

	if requestID, ok := RequestIDFromContext(ctx); ok {
		event.RequestID = requestID
	}

	if err := m.ledger.AppendEvent(ctx, event); err != nil {
		m.l.LogErrorf("Could not record %v event for booking %v: %v", kind, bookingID, err.Error())
	}
}
