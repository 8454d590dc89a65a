package booking

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrEmptyBookingID          = errors.New("booking id must not be empty")
	ErrShortGuestName          = errors.New("guest name must be at least 2 characters")
	ErrEmptyRoomNumber         = errors.New("room number must not be empty")
	ErrMissingDate             = errors.New("check-in and check-out dates must be provided")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrNegativePrice           = errors.New("total price must not be negative")
	ErrInvalidStatus           = errors.New("unknown booking status")
)

// InputError reports malformed request fields. It is always raised before any
// state mutation.
type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}

// InvalidBookingError reports a request that is unsatisfiable regardless of
// timing: an unknown room, a past check-in date, or an inverted date range.
type InvalidBookingError struct {
	reason string
}

func newInvalidBookingError(format string, v ...any) *InvalidBookingError {
	return &InvalidBookingError{reason: fmt.Sprintf(format, v...)}
}

func IsInvalidBookingError(err error) *InvalidBookingError {
	if err == nil {
		return nil
	}

	var invalidErr *InvalidBookingError

	if errors.As(err, &invalidErr) {
		return invalidErr
	}

	return nil
}

func (e *InvalidBookingError) Error() string {
	return e.reason
}

// NotAvailableError reports a contention condition: the room is currently
// non-Available, or the requested range conflicts with a confirmed booking.
// A retry with different dates or a different room may succeed.
type NotAvailableError struct {
	roomNumber string
	reasons    []string
}

func newNotAvailableError(roomNumber string) *NotAvailableError {
	return &NotAvailableError{roomNumber: roomNumber, reasons: nil}
}

func IsNotAvailableError(err error) *NotAvailableError {
	if err == nil {
		return nil
	}

	var notAvailableErr *NotAvailableError

	if errors.As(err, &notAvailableErr) {
		return notAvailableErr
	}

	return nil
}

func (e *NotAvailableError) addStatus(status fmt.Stringer) {
	e.reasons = append(e.reasons, fmt.Sprintf("room '%v' is not available, current status '%v'", e.roomNumber, status))
}

func (e *NotAvailableError) addDateConflict(checkIn, checkOut string) {
	e.reasons = append(
		e.reasons,
		fmt.Sprintf("room '%v' is not available between %v and %v", e.roomNumber, checkIn, checkOut),
	)
}

func (e *NotAvailableError) RoomNumber() string {
	return e.roomNumber
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("%+v", e.reasons)
}

func (e *NotAvailableError) Reasons() []string {
	return e.reasons
}
