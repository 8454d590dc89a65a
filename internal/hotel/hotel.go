// Package hotel owns one hotel's room inventory: the set of rooms, their
// statuses, and the administrative operations over them. Rooms are held by
// value; callers get copies and mutate only through Hotel methods.
package hotel

import (
	"fmt"
	"strings"
	"sync"

	"github.com/stayforge/hotelier/internal/catalog"
)

type Config struct {
	ID         string
	Name       string
	Location   string
	StarRating int
}

type Hotel struct {
	mu         sync.RWMutex
	id         string
	name       string
	location   string
	starRating int
	rooms      []Room
	index      map[string]int
}

func New(conf Config) (*Hotel, error) {
	id := strings.TrimSpace(conf.ID)
	if id == "" {
		return nil, fmt.Errorf("hotel id: %w", ErrEmptyField)
	}

	name := strings.TrimSpace(conf.Name)
	if name == "" {
		return nil, fmt.Errorf("hotel name: %w", ErrEmptyField)
	}

	location := strings.TrimSpace(conf.Location)
	if location == "" {
		return nil, fmt.Errorf("hotel location: %w", ErrEmptyField)
	}

	if conf.StarRating < 1 || conf.StarRating > 5 {
		return nil, ErrInvalidStarRating
	}

	return &Hotel{
		id:         id,
		name:       name,
		location:   location,
		starRating: conf.StarRating,
		rooms:      []Room{},
		index:      make(map[string]int),
	}, nil
}

func (h *Hotel) ID() string {
	return h.id
}

func (h *Hotel) Name() string {
	return h.name
}

func (h *Hotel) Location() string {
	return h.location
}

func (h *Hotel) StarRating() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.starRating
}

func (h *Hotel) SetStarRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidStarRating
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.starRating = rating

	return nil
}

// Equal reports whether two hotels denote the same hotel.
func (h *Hotel) Equal(other *Hotel) bool {
	return other != nil && h.id == other.id
}

// AddRoom inserts a room. It returns false and leaves the inventory untouched
// when a room with the same number already exists.
func (h *Hotel) AddRoom(room Room) (bool, error) {
	if room.Number == "" {
		return false, ErrEmptyRoomNumber
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.index[room.Number]; exists {
		return false, nil
	}

	h.index[room.Number] = len(h.rooms)
	h.rooms = append(h.rooms, room)

	return true, nil
}

// RemoveRoom deletes the room with the given number. It returns false when no
// room matches.
func (h *Hotel) RemoveRoom(number string) (bool, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return false, ErrEmptyRoomNumber
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	pos, exists := h.index[number]
	if !exists {
		return false, nil
	}

	h.rooms = append(h.rooms[:pos], h.rooms[pos+1:]...)
	delete(h.index, number)

	for i := pos; i < len(h.rooms); i++ {
		h.index[h.rooms[i].Number] = i
	}

	return true, nil
}

// RoomByNumber returns a copy of the matching room.
func (h *Hotel) RoomByNumber(number string) (Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Room{}, ErrEmptyRoomNumber
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	pos, exists := h.index[number]
	if !exists {
		return Room{}, fmt.Errorf("room %v: %w", number, ErrRoomNotFound)
	}

	return h.rooms[pos], nil
}

// SetRoomStatus updates the status of one room.
func (h *Hotel) SetRoomStatus(number string, status RoomStatus) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}

	if !status.Valid() {
		return ErrInvalidStatus
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	pos, exists := h.index[number]
	if !exists {
		return fmt.Errorf("room %v: %w", number, ErrRoomNotFound)
	}

	h.rooms[pos].Status = status

	return nil
}

// SetRoomDescription updates the free-text description of one room.
func (h *Hotel) SetRoomDescription(number, description string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	pos, exists := h.index[number]
	if !exists {
		return fmt.Errorf("room %v: %w", number, ErrRoomNotFound)
	}

	h.rooms[pos].Description = description

	return nil
}

// AllRooms returns a snapshot of every room in insertion order.
func (h *Hotel) AllRooms() []Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Room, len(h.rooms))
	copy(out, h.rooms)

	return out
}

// AvailableRooms returns a snapshot of rooms with status Available, in
// insertion order.
func (h *Hotel) AvailableRooms() []Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []Room

	for _, room := range h.rooms {
		if room.IsAvailable() {
			out = append(out, room)
		}
	}

	return out
}

// RoomsByType returns a snapshot of rooms of the given type, in insertion
// order.
func (h *Hotel) RoomsByType(roomType catalog.RoomType) []Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []Room

	for _, room := range h.rooms {
		if room.Type == roomType {
			out = append(out, room)
		}
	}

	return out
}

// RoomsByStatus returns a snapshot of rooms with the given status, in
// insertion order.
func (h *Hotel) RoomsByStatus(status RoomStatus) []Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []Room

	for _, room := range h.rooms {
		if room.Status == status {
			out = append(out, room)
		}
	}

	return out
}

func (h *Hotel) TotalRoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms)
}

func (h *Hotel) AvailableRoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0

	for _, room := range h.rooms {
		if room.IsAvailable() {
			count++
		}
	}

	return count
}

func (h *Hotel) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return fmt.Sprintf("Hotel{id=%s, name=%s, location=%s, rating=%d, rooms=%d}",
		h.id, h.name, h.location, h.starRating, len(h.rooms))
}
