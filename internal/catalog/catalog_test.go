package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomTypeTable(t *testing.T) {
	tests := []struct {
		name        string
		roomType    RoomType
		displayName string
		capacity    int
	}{
		{name: "single", roomType: Single, displayName: "Single Room", capacity: 1},
		{name: "double", roomType: Double, displayName: "Double Room", capacity: 2},
		{name: "suite", roomType: Suite, displayName: "Suite", capacity: 4},
		{name: "deluxe", roomType: Deluxe, displayName: "Deluxe Suite", capacity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.roomType.Valid())
			assert.Equal(t, tt.displayName, tt.roomType.DisplayName())
			assert.Equal(t, tt.capacity, tt.roomType.Capacity())
		})
	}
}

func TestRoomTypeUnknown(t *testing.T) {
	unknown := RoomType(42)

	assert.False(t, unknown.Valid())
	assert.Equal(t, "Unknown", unknown.String())
	assert.Empty(t, unknown.DisplayName())
	assert.Zero(t, unknown.Capacity())
}

func TestTypesOrder(t *testing.T) {
	assert.Equal(t, []RoomType{Single, Double, Suite, Deluxe}, Types())
}
