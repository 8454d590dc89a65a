package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingValidation(t *testing.T) {
	checkIn := Date(2026, time.September, 10)
	checkOut := Date(2026, time.September, 12)

	tests := []struct {
		name     string
		id       string
		guest    string
		room     string
		checkIn  time.Time
		checkOut time.Time
		price    float64
		status   BookingStatus
		wantErr  error
	}{
		{name: "empty id", id: " ", guest: "John", room: "201", checkIn: checkIn, checkOut: checkOut, price: 1, status: StatusConfirmed, wantErr: ErrEmptyBookingID},
		{name: "short guest", id: "BK1", guest: " J ", room: "201", checkIn: checkIn, checkOut: checkOut, price: 1, status: StatusConfirmed, wantErr: ErrShortGuestName},
		{name: "empty room", id: "BK1", guest: "John", room: "  ", checkIn: checkIn, checkOut: checkOut, price: 1, status: StatusConfirmed, wantErr: ErrEmptyRoomNumber},
		{name: "zero check-in", id: "BK1", guest: "John", room: "201", checkIn: time.Time{}, checkOut: checkOut, price: 1, status: StatusConfirmed, wantErr: ErrMissingDate},
		{name: "equal dates", id: "BK1", guest: "John", room: "201", checkIn: checkIn, checkOut: checkIn, price: 1, status: StatusConfirmed, wantErr: ErrCheckOutNotAfterCheckIn},
		{name: "inverted dates", id: "BK1", guest: "John", room: "201", checkIn: checkOut, checkOut: checkIn, price: 1, status: StatusConfirmed, wantErr: ErrCheckOutNotAfterCheckIn},
		{name: "negative price", id: "BK1", guest: "John", room: "201", checkIn: checkIn, checkOut: checkOut, price: -1, status: StatusConfirmed, wantErr: ErrNegativePrice},
		{name: "bad status", id: "BK1", guest: "John", room: "201", checkIn: checkIn, checkOut: checkOut, price: 1, status: BookingStatus(99), wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(tt.id, tt.guest, tt.room, tt.checkIn, tt.checkOut, tt.price, tt.status)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewBookingTrimsIdentity(t *testing.T) {
	b, err := NewBooking(" BK1 ", "  John Anderson ", " 201 ",
		Date(2026, time.September, 10), Date(2026, time.September, 13), 389.97, StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, "BK1", b.ID)
	assert.Equal(t, "John Anderson", b.GuestName)
	assert.Equal(t, "201", b.RoomNumber)
	assert.Equal(t, 3, b.Nights())
}

func TestBookingEqualIgnoresPriceStatusRoom(t *testing.T) {
	checkIn := Date(2026, time.September, 10)
	checkOut := Date(2026, time.September, 12)

	a, err := NewBooking("BK1", "John", "201", checkIn, checkOut, 100, StatusConfirmed)
	require.NoError(t, err)

	b, err := NewBooking("BK1", "John", "301", checkIn, checkOut.AddDate(0, 0, 2), 999, StatusPending)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a.withStatus(StatusCancelled)))

	c, err := NewBooking("BK1", "Jane", "201", checkIn, checkOut, 100, StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	d, err := NewBooking("BK1", "John", "201", checkIn.AddDate(0, 0, 1), checkOut, 100, StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, a.Equal(d))
}

func TestRequestIDContext(t *testing.T) {
	ctx := NewContextWithRequestID(context.Background(), "req-1")

	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)

	_, ok = RequestIDFromContext(context.Background())
	assert.False(t, ok)
}
