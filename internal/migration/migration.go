// Package migration seeds the inventory with the initial room set.
package migration

import (
	"context"
	"fmt"

	"github.com/stayforge/hotelier/internal/catalog"
	"github.com/stayforge/hotelier/internal/hotel"
	"github.com/stayforge/hotelier/internal/logger"
)

type inventory interface {
	AddRoom(room hotel.Room) (bool, error)
}

type seedRoom struct {
	number string
	kind   catalog.RoomType
	price  float64
}

func Up(ctx context.Context, l *logger.Logger, inv inventory) error {
	seed := []seedRoom{
		{number: "101", kind: catalog.Single, price: 79.99},
		{number: "102", kind: catalog.Single, price: 79.99},
		{number: "201", kind: catalog.Double, price: 129.99},
		{number: "202", kind: catalog.Double, price: 129.99},
		{number: "203", kind: catalog.Double, price: 129.99},
		{number: "301", kind: catalog.Suite, price: 199.99},
		{number: "302", kind: catalog.Deluxe, price: 159.99},
	}

	for _, s := range seed {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("seed interrupted: %w", err)
		}

		room, err := hotel.NewRoom(s.number, s.kind, s.price)
		if err != nil {
			return fmt.Errorf("build seed room %v: %w", s.number, err)
		}

		added, err := inv.AddRoom(room)
		if err != nil {
			return fmt.Errorf("add seed room %v: %w", s.number, err)
		}

		if !added {
			l.LogWarnf("Seed room %v already present, skipping", s.number)
		}
	}

	return nil
}
