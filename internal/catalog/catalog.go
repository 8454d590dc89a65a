// Package catalog holds the fixed table of room types offered by the hotel.
// The table is process-wide and immutable; capacity is informational only and
// is not enforced against bookings.
package catalog

type RoomType int

const (
	Single RoomType = iota
	Double
	Suite
	Deluxe
)

type Spec struct {
	DisplayName string
	Capacity    int
}

var specs = map[RoomType]Spec{
	Single: {DisplayName: "Single Room", Capacity: 1},
	Double: {DisplayName: "Double Room", Capacity: 2},
	Suite:  {DisplayName: "Suite", Capacity: 4},
	Deluxe: {DisplayName: "Deluxe Suite", Capacity: 2},
}

func (t RoomType) Valid() bool {
	_, ok := specs[t]

	return ok
}

func (t RoomType) DisplayName() string {
	return specs[t].DisplayName
}

func (t RoomType) Capacity() int {
	return specs[t].Capacity
}

func (t RoomType) String() string {
	switch t {
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Suite:
		return "Suite"
	case Deluxe:
		return "Deluxe"
	default:
		return "Unknown"
	}
}

// Types returns every room type in declaration order.
func Types() []RoomType {
	return []RoomType{Single, Double, Suite, Deluxe}
}
