// Package memory is the in-process reservation ledger: an append-only booking
// log plus the domain-event log, guarded by one mutex. Reads hand out copies,
// never internal slices.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/stayforge/hotelier/internal/booking"
	"github.com/stayforge/hotelier/internal/logger"
)

type Config struct {
	L *logger.Logger
}

type DB struct {
	mu       sync.RWMutex
	l        *logger.Logger
	bookings []booking.Booking
	events   []booking.Event
}

func New(conf Config) *DB {
	return &DB{
		l:        conf.L,
		bookings: []booking.Booking{},
		events:   []booking.Event{},
	}
}

func (db *DB) AppendBooking(_ context.Context, b booking.Booking) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.bookings = append(db.bookings, b)

	return nil
}

// ReplaceBooking swaps the first record with a matching id for the given one.
func (db *DB) ReplaceBooking(_ context.Context, b booking.Booking) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.bookings {
		if db.bookings[i].ID == b.ID {
			db.bookings[i] = b

			return nil
		}
	}

	return fmt.Errorf("booking %v: %w", b.ID, booking.ErrBookingNotFound)
}

// BookingByID returns the first record with a matching id.
func (db *DB) BookingByID(_ context.Context, id string) (booking.Booking, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, b := range db.bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return booking.Booking{}, fmt.Errorf("booking %v: %w", id, booking.ErrBookingNotFound)
}

// Bookings returns a snapshot of every record in insertion order.
func (db *DB) Bookings(_ context.Context) ([]booking.Booking, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]booking.Booking, len(db.bookings))
	copy(out, db.bookings)

	return out, nil
}

// BookingsForRoom returns every record for the given room, in insertion order.
func (db *DB) BookingsForRoom(_ context.Context, roomNumber string) ([]booking.Booking, error) {
	roomNumber = strings.TrimSpace(roomNumber)

	db.mu.RLock()
	defer db.mu.RUnlock()

	var out []booking.Booking

	for _, b := range db.bookings {
		if b.RoomNumber == roomNumber {
			out = append(out, b)
		}
	}

	return out, nil
}

func (db *DB) AppendEvent(_ context.Context, e booking.Event) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.events = append(db.events, e)

	return nil
}

// Events returns a snapshot of the domain-event log in insertion order.
func (db *DB) Events(_ context.Context) ([]booking.Event, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]booking.Event, len(db.events))
	copy(out, db.events)

	return out, nil
}
