package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/nxtbus/nxtbus-go/internal/config"
	"github.com/nxtbus/nxtbus-go/internal/domain"
	"github.com/nxtbus/nxtbus-go/internal/ledger"
	"github.com/nxtbus/nxtbus-go/internal/service/booking"
)

func testConfig() *config.Config {
	return &config.Config{
		Store:   config.StoreConfig{Backend: config.StoreMemory},
		Search:  config.SearchConfig{CacheCapacity: 8, Seed: 5},
		Payment: config.PaymentConfig{Currency: "INR"},
	}
}

func TestFullBookingFlow(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	buses, err := a.Services.Query.SearchBuses(ctx, "Mumbai", "Pune", "20/10/2025")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	bus := buses[0]
	seats, err := a.Services.Query.GetSeats(ctx, bus.ID, "Mumbai", "Pune", "20/10/2025")
	if err != nil {
		t.Fatalf("seats: %v", err)
	}

	sel := ledger.New(seats)
	for _, s := range seats {
		if len(sel.SelectedNumbers()) == 2 {
			break
		}
		sel.Toggle(s.Number)
	}
	if len(sel.SelectedNumbers()) != 2 {
		t.Fatalf("could not select two seats on %s", bus.ID)
	}

	picked := sel.SelectedNumbers()
	booked, err := a.Services.Booking.Finalize(ctx, booking.FinalizeInput{
		Bus:           bus,
		SelectedSeats: sel.Selected(),
		Passengers: []domain.PassengerInput{
			{Name: "Asha Rao", Age: "34", Gender: "Female", SeatNumber: picked[0]},
			{Name: "Ravi Rao", Age: "36", Gender: "Male", SeatNumber: picked[1]},
		},
		Contact:     domain.ContactDetails{MobileNumber: "9876543210", EmailAddress: "asha@example.com"},
		JourneyDate: "20/10/2025",
		FromCity:    "Mumbai",
		ToCity:      "Pune",
		TotalAmount: sel.Total(),
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	got, err := a.Services.Booking.Booking(ctx, booked.PNR)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.TotalAmount != sel.Total() {
		t.Errorf("stored total %d, ledger total %d", got.TotalAmount, sel.Total())
	}
	if len(got.Passengers) != 2 {
		t.Errorf("stored %d passengers, want 2", len(got.Passengers))
	}
}
