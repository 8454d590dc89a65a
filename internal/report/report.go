// Package report derives read-only views over the inventory: price
// aggregates and the occupancy rate. Nothing here mutates state.
package report

import (
	"time"

	"github.com/stayforge/hotelier/internal/hotel"
)

type inventory interface {
	AllRooms() []hotel.Room
	AvailableRooms() []hotel.Room
	TotalRoomCount() int
}

type Reporter struct {
	inventory inventory
}

func New(inv inventory) *Reporter {
	return &Reporter{inventory: inv}
}

// AveragePriceOfAvailableRooms returns the arithmetic mean of price per night
// over rooms with status Available, or 0 when none are available.
func (r *Reporter) AveragePriceOfAvailableRooms() float64 {
	available := r.inventory.AvailableRooms()
	if len(available) == 0 {
		return 0
	}

	total := 0.0

	for _, room := range available {
		total += room.PricePerNight
	}

	return total / float64(len(available))
}

// CheapestAvailableRoom returns the lowest-priced available room; ties go to
// the first room in inventory order. The second result is false when no room
// is available.
func (r *Reporter) CheapestAvailableRoom() (hotel.Room, bool) {
	available := r.inventory.AvailableRooms()
	if len(available) == 0 {
		return hotel.Room{}, false
	}

	cheapest := available[0]

	for _, room := range available[1:] {
		if room.PricePerNight < cheapest.PricePerNight {
			cheapest = room
		}
	}

	return cheapest, true
}

// MostExpensiveAvailableRoom returns the highest-priced available room; ties
// go to the first room in inventory order. The second result is false when no
// room is available.
func (r *Reporter) MostExpensiveAvailableRoom() (hotel.Room, bool) {
	available := r.inventory.AvailableRooms()
	if len(available) == 0 {
		return hotel.Room{}, false
	}

	mostExpensive := available[0]

	for _, room := range available[1:] {
		if room.PricePerNight > mostExpensive.PricePerNight {
			mostExpensive = room
		}
	}

	return mostExpensive, true
}

// OccupancyRate returns 100 * occupied / total, or 0 for an empty inventory.
// Only status Occupied counts; Maintenance and Reserved rooms do not.
func (r *Reporter) OccupancyRate() float64 {
	total := r.inventory.TotalRoomCount()
	if total == 0 {
		return 0
	}

	occupied := 0

	for _, room := range r.inventory.AllRooms() {
		if room.Status == hotel.StatusOccupied {
			occupied++
		}
	}

	return float64(occupied) * 100 / float64(total)
}

// AvailableRoomsForRange lists rooms currently available for a prospective
// stay. The range must be well formed; availability itself reflects current
// room status only, the per-booking conflict scan happens at booking time.
func (r *Reporter) AvailableRoomsForRange(checkIn, checkOut time.Time) ([]hotel.Room, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, ErrMissingDate
	}

	if !checkOut.After(checkIn) {
		return nil, ErrCheckOutNotAfterCheckIn
	}

	return r.inventory.AvailableRooms(), nil
}
