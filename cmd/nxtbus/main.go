// Command nxtbus runs the booking core end to end against mock inventory:
// search a route, pick a bus, select seats, finalize a booking through the
// sandbox checkout, and write the e-ticket PDF.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/nxtbus/nxtbus-go/internal/app"
	"github.com/nxtbus/nxtbus-go/internal/config"
	"github.com/nxtbus/nxtbus-go/internal/domain"
	"github.com/nxtbus/nxtbus-go/internal/ledger"
	"github.com/nxtbus/nxtbus-go/internal/service/booking"
	"github.com/nxtbus/nxtbus-go/internal/ticket"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := run(context.Background(), application, logger); err != nil {
		logger.Error("demo flow failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, logger *slog.Logger) error {
	const (
		from = "Mumbai"
		to   = "Pune"
	)
	date := time.Now().AddDate(0, 0, 7).Format("02/01/2006")

	buses, err := a.Services.Query.SearchBuses(ctx, from, to, date)
	if err != nil {
		return err
	}
	logger.Info("search complete", "route", from+" -> "+to, "date", date, "buses", len(buses))

	bus := buses[0]
	logger.Info("bus selected",
		"id", bus.ID,
		"operator", bus.OperatorName,
		"class", bus.ClassTag,
		"departs", bus.DepartureTime,
		"price", bus.Price,
	)

	seats, err := a.Services.Query.GetSeats(ctx, bus.ID, from, to, date)
	if err != nil {
		return err
	}

	sel := ledger.New(seats)
	for _, s := range seats {
		if len(sel.SelectedNumbers()) == 2 {
			break
		}
		sel.Toggle(s.Number)
	}
	logger.Info("seats selected", "seats", sel.SelectedNumbers(), "total", sel.Total())

	names := []string{"Asha Rao", "Ravi Rao"}
	genders := []string{"Female", "Male"}
	ages := []string{"34", "36"}

	passengers := make([]domain.PassengerInput, 0, 2)
	for i, n := range sel.SelectedNumbers() {
		passengers = append(passengers, domain.PassengerInput{
			Name:       names[i],
			Age:        ages[i],
			Gender:     genders[i],
			SeatNumber: n,
		})
	}

	booked, err := a.Services.Booking.Finalize(ctx, booking.FinalizeInput{
		Bus:           bus,
		SelectedSeats: sel.Selected(),
		Passengers:    passengers,
		Contact:       domain.ContactDetails{MobileNumber: "9876543210", EmailAddress: "asha@example.com"},
		JourneyDate:   date,
		FromCity:      from,
		ToCity:        to,
		TotalAmount:   sel.Total(),
	})
	if err != nil {
		return err
	}

	pdf, filename, err := ticket.Render(*booked)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, pdf, 0o644); err != nil {
		return err
	}
	logger.Info("ticket written", "pnr", booked.PNR, "file", filename)

	all, err := a.Services.Booking.Bookings(ctx)
	if err != nil {
		return err
	}
	logger.Info("stored bookings", "count", len(all))

	return nil
}
