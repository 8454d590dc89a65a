package hotel

import (
	"fmt"
	"strings"

	"github.com/stayforge/hotelier/internal/catalog"
)

type RoomStatus int

const (
	StatusAvailable RoomStatus = iota
	StatusOccupied
	StatusMaintenance
	StatusReserved
)

func (s RoomStatus) Valid() bool {
	return s >= StatusAvailable && s <= StatusReserved
}

func (s RoomStatus) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusOccupied:
		return "Occupied"
	case StatusMaintenance:
		return "Under Maintenance"
	case StatusReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}

// Room is one bookable room. Identity is the room number alone; two rooms
// with the same number are the same room regardless of other fields.
type Room struct {
	Number        string
	Type          catalog.RoomType
	PricePerNight float64
	Status        RoomStatus
	Description   string
}

// NewRoom builds a room with status Available and an empty description.
// The room number is trimmed before it becomes the room's identity.
func NewRoom(number string, roomType catalog.RoomType, pricePerNight float64) (Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Room{}, ErrEmptyRoomNumber
	}

	if !roomType.Valid() {
		return Room{}, fmt.Errorf("room %v: %w", number, ErrInvalidRoomType)
	}

	if pricePerNight < 0 {
		return Room{}, fmt.Errorf("room %v: %w", number, ErrNegativePrice)
	}

	return Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: pricePerNight,
		Status:        StatusAvailable,
		Description:   "",
	}, nil
}

func (r Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}

// Equal reports whether two rooms denote the same room.
func (r Room) Equal(other Room) bool {
	return r.Number == other.Number
}

// TotalCost returns the price for the given number of nights.
func (r Room) TotalCost(nights int) (float64, error) {
	if nights <= 0 {
		return 0, ErrNonPositiveNights
	}

	return r.PricePerNight * float64(nights), nil
}

func (r Room) String() string {
	return fmt.Sprintf("Room{number=%s, type=%s, price=%.2f, status=%s}",
		r.Number, r.Type.DisplayName(), r.PricePerNight, r.Status)
}
