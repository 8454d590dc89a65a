// Package app wires the components together and walks through the engine's
// public operations. The walkthrough is a pure consumer: every effect it
// prints goes through the same calls any embedding service would make.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/stayforge/hotelier/internal/booking"
	"github.com/stayforge/hotelier/internal/catalog"
	"github.com/stayforge/hotelier/internal/config"
	"github.com/stayforge/hotelier/internal/hotel"
	"github.com/stayforge/hotelier/internal/idgen/uuid"
	"github.com/stayforge/hotelier/internal/logger"
	"github.com/stayforge/hotelier/internal/migration"
	"github.com/stayforge/hotelier/internal/report"
	"github.com/stayforge/hotelier/internal/storage/memory"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load(l)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	inv, err := hotel.New(hotel.Config{
		ID:         conf.HotelID,
		Name:       conf.HotelName,
		Location:   conf.HotelLocation,
		StarRating: conf.StarRating,
	})
	if err != nil {
		return fmt.Errorf("init hotel: %w", err)
	}

	if err := migration.Up(ctx, l, inv); err != nil {
		return fmt.Errorf("up room seed migration: %w", err)
	}

	l.LogInfo("Room seed migration has been applied")

	storage := memory.New(memory.Config{L: l})
	idGen := uuid.New()
	engine := booking.New(l, inv, storage, idGen)
	reporter := report.New(inv)

	printHotelInfo(inv, reporter)
	printAvailability(reporter)
	printFiltering(inv, reporter)

	if err := runBookingWalkthrough(ctx, l, engine); err != nil {
		return fmt.Errorf("booking walkthrough: %w", err)
	}

	printFinalStatistics(ctx, l, inv, engine, reporter)

	l.LogInfo("Walkthrough finished")

	return nil
}

func printHotelInfo(inv *hotel.Hotel, reporter *report.Reporter) {
	fmt.Println("HOTEL INFORMATION")
	fmt.Printf("  Name: %s\n", inv.Name())
	fmt.Printf("  Location: %s\n", inv.Location())
	fmt.Printf("  Star Rating: %d stars\n", inv.StarRating())
	fmt.Printf("  Total Rooms: %d\n", inv.TotalRoomCount())
	fmt.Printf("  Available Rooms: %d\n", inv.AvailableRoomCount())
	fmt.Printf("  Average Price: $%.2f\n\n", reporter.AveragePriceOfAvailableRooms())
}

func printAvailability(reporter *report.Reporter) {
	fmt.Println("ROOM AVAILABILITY")

	checkIn := time.Now().UTC().AddDate(0, 0, 5)
	checkOut := checkIn.AddDate(0, 0, 3)

	rooms, err := reporter.AvailableRoomsForRange(checkIn, checkOut)
	if err != nil {
		fmt.Printf("  availability check failed: %v\n\n", err)

		return
	}

	fmt.Printf("  %s to %s: %d room(s)\n", checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly), len(rooms))

	for _, room := range rooms {
		fmt.Printf("  - Room %s (%s) $%.2f/night\n", room.Number, room.Type.DisplayName(), room.PricePerNight)
	}

	fmt.Println()
}

func printFiltering(inv *hotel.Hotel, reporter *report.Reporter) {
	fmt.Println("ROOM FILTERING")

	fmt.Println("  Double Rooms:")

	for _, room := range inv.RoomsByType(catalog.Double) {
		fmt.Printf("  - Room %s: $%.2f\n", room.Number, room.PricePerNight)
	}

	cheapest, ok := reporter.CheapestAvailableRoom()
	if !ok {
		fmt.Println("  No rooms available")
		fmt.Println()

		return
	}

	mostExpensive, _ := reporter.MostExpensiveAvailableRoom()
	fmt.Printf("  Price range: $%.2f - $%.2f\n\n", cheapest.PricePerNight, mostExpensive.PricePerNight)
}

func runBookingWalkthrough(ctx context.Context, l *logger.Logger, engine *booking.Manager) error {
	fmt.Println("BOOKINGS")

	checkIn := time.Now().UTC().AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)

	first, err := engine.CreateBooking(ctx, booking.CreateBookingInput{
		BookingID:  "BK001",
		GuestName:  "John Anderson",
		RoomNumber: "201",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		return fmt.Errorf("create first booking: %w", err)
	}

	fmt.Printf("  Created %v\n", first)

	second, err := engine.CreateBooking(ctx, booking.CreateBookingInput{
		BookingID:  "BK002",
		GuestName:  "Emma Wilson",
		RoomNumber: "301",
		CheckIn:    checkIn.AddDate(0, 0, 3),
		CheckOut:   checkIn.AddDate(0, 0, 4),
	})
	if err != nil {
		return fmt.Errorf("create second booking: %w", err)
	}

	fmt.Printf("  Created %v\n", second)

	// Overlaps the first stay, so the conflict scan rejects it.
	_, err = engine.CreateBooking(ctx, booking.CreateBookingInput{
		BookingID:  "BK003",
		GuestName:  "Michael Brown",
		RoomNumber: "201",
		CheckIn:    checkIn.AddDate(0, 0, 1),
		CheckOut:   checkIn.AddDate(0, 0, 3),
	})
	if notAvailableErr := booking.IsNotAvailableError(err); notAvailableErr != nil {
		fmt.Printf("  Rejected as expected: %v\n", notAvailableErr)
	} else if err != nil {
		return fmt.Errorf("unexpected rejection of overlapping booking: %w", err)
	}

	// Fully disjoint from the first stay, so it goes through.
	third, err := engine.CreateBooking(ctx, booking.CreateBookingInput{
		BookingID:  "BK003",
		GuestName:  "Michael Brown",
		RoomNumber: "201",
		CheckIn:    checkIn.AddDate(0, 0, 3),
		CheckOut:   checkIn.AddDate(0, 0, 6),
	})
	if err != nil {
		return fmt.Errorf("create disjoint booking: %w", err)
	}

	fmt.Printf("  Created %v\n", third)

	cancelled, err := engine.CancelBooking(ctx, first.ID)
	if err != nil {
		return fmt.Errorf("cancel first booking: %w", err)
	}

	fmt.Printf("  Cancelled %v: %v\n", first.ID, cancelled)

	fourth, err := engine.CreateBooking(ctx, booking.CreateBookingInput{
		BookingID:  "BK004",
		GuestName:  "Sophia Clark",
		RoomNumber: "201",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		return fmt.Errorf("rebook cancelled dates: %w", err)
	}

	fmt.Printf("  Created %v\n", fourth)

	// A past check-in is an invalid request, not an availability failure.
	_, err = engine.CreateBooking(ctx, booking.CreateBookingInput{
		BookingID:  "BK999",
		GuestName:  "Test Guest",
		RoomNumber: "102",
		CheckIn:    time.Now().UTC().AddDate(0, 0, -1),
		CheckOut:   time.Now().UTC().AddDate(0, 0, 1),
	})
	if invalidErr := booking.IsInvalidBookingError(err); invalidErr != nil {
		fmt.Printf("  Rejected as expected: %v\n", invalidErr)
	} else if err != nil {
		l.LogErrorf("Past check-in rejected with the wrong kind: %v", err.Error())
	}

	fmt.Println()

	return nil
}

func printFinalStatistics(
	ctx context.Context,
	l *logger.Logger,
	inv *hotel.Hotel,
	engine *booking.Manager,
	reporter *report.Reporter,
) {
	fmt.Println("FINAL STATISTICS")

	total, err := engine.TotalBookings(ctx)
	if err != nil {
		l.LogErrorf("Could not count bookings: %v", err.Error())
	}

	active, err := engine.ActiveBookings(ctx)
	if err != nil {
		l.LogErrorf("Could not list active bookings: %v", err.Error())
	}

	fmt.Printf("  Total bookings: %d\n", total)
	fmt.Printf("  Active bookings: %d\n", len(active))
	fmt.Printf("  Occupancy rate: %.1f%%\n", reporter.OccupancyRate())
	fmt.Printf("  Available rooms: %d of %d\n", inv.AvailableRoomCount(), inv.TotalRoomCount())
}
