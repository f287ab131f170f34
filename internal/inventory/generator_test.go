package inventory

import (
	"strings"
	"testing"

	"github.com/nxtbus/nxtbus-go/internal/domain"
)

func TestBusesWithinDocumentedRanges(t *testing.T) {
	gen := New(42)
	key := domain.RouteKey{Origin: "Mumbai", Destination: "Pune", Date: "20/10/2025"}

	buses := gen.Buses(key)
	if len(buses) < 8 || len(buses) > 14 {
		t.Fatalf("bus count = %d, want 8..14", len(buses))
	}

	for _, b := range buses {
		if b.OperatorName == "" {
			t.Errorf("bus %s has empty operator", b.ID)
		}
		if b.AvailableSeats < 0 || b.AvailableSeats > b.TotalSeats {
			t.Errorf("bus %s: available %d outside [0,%d]", b.ID, b.AvailableSeats, b.TotalSeats)
		}
		if b.TotalSeats != 24 && b.TotalSeats != 47 {
			t.Errorf("bus %s: total seats %d, want 24 or 47", b.ID, b.TotalSeats)
		}
		if b.Class.IsSleeper() != strings.Contains(b.ClassTag, "Sleeper") {
			t.Errorf("bus %s: class %v disagrees with tag %q", b.ID, b.Class, b.ClassTag)
		}
		if b.Class.IsAC() != strings.Contains(b.ClassTag, "A/C") {
			t.Errorf("bus %s: AC flag of %v disagrees with tag %q", b.ID, b.Class, b.ClassTag)
		}

		min, max := priceRange(b.Class)
		if b.Price < min || b.Price >= max {
			t.Errorf("bus %s (%s): price %d outside [%d,%d)", b.ID, b.ClassTag, b.Price, min, max)
		}
		if b.Rating < 3.0 || b.Rating > 5.0 {
			t.Errorf("bus %s: rating %f outside [3,5]", b.ID, b.Rating)
		}
		if n := len(b.Amenities); n < 2 || n > 5 {
			t.Errorf("bus %s: %d amenities, want 2..5", b.ID, n)
		}
	}

	for i := 1; i < len(buses); i++ {
		if buses[i-1].DepartureTime > buses[i].DepartureTime {
			t.Fatalf("buses not sorted by departure: %q > %q",
				buses[i-1].DepartureTime, buses[i].DepartureTime)
		}
	}
}

func priceRange(class domain.BusClass) (int, int) {
	switch class {
	case domain.SleeperAC:
		return 1000, 1500
	case domain.SleeperNonAC:
		return 700, 1100
	case domain.SeaterAC:
		return 600, 900
	default:
		return 400, 700
	}
}

func TestBusesReproduciblePerKey(t *testing.T) {
	gen := New(7)
	key := domain.RouteKey{Origin: "Delhi", Destination: "Jaipur", Date: "01/11/2025"}

	a := gen.Buses(key)
	b := gen.Buses(key)
	if len(a) != len(b) {
		t.Fatalf("regeneration changed bus count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Price != b[i].Price || a[i].DepartureTime != b[i].DepartureTime {
			t.Fatalf("regeneration drifted at %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	other := gen.Buses(domain.RouteKey{Origin: "Delhi", Destination: "Jaipur", Date: "02/11/2025"})
	same := len(a) == len(other)
	if same {
		for i := range a {
			if a[i].Price != other[i].Price {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different dates produced identical inventories")
	}
}

func TestSeatsBookedCountMatchesBus(t *testing.T) {
	gen := New(99)
	key := domain.RouteKey{Origin: "Chennai", Destination: "Bengaluru", Date: "15/12/2025"}

	for _, bus := range gen.Buses(key) {
		seats := gen.Seats(key, bus)
		if len(seats) != bus.TotalSeats {
			t.Fatalf("bus %s: %d seats, want %d", bus.ID, len(seats), bus.TotalSeats)
		}

		unavailable := 0
		for _, s := range seats {
			if !s.Available {
				unavailable++
			}
		}
		if want := bus.TotalSeats - bus.AvailableSeats; unavailable != want {
			t.Errorf("bus %s: %d unavailable seats, want %d", bus.ID, unavailable, want)
		}

		if bus.Class.IsSleeper() {
			if seats[0].Number != "L1" || seats[1].Number != "R1" {
				t.Errorf("bus %s: sleeper layout starts %q,%q", bus.ID, seats[0].Number, seats[1].Number)
			}
			for _, s := range seats {
				if s.Price < bus.Price || s.Price >= bus.Price+200 {
					t.Errorf("bus %s seat %s: price %d outside sleeper delta", bus.ID, s.Number, s.Price)
				}
			}
		} else {
			if seats[0].Number != "1" {
				t.Errorf("bus %s: seater layout starts %q", bus.ID, seats[0].Number)
			}
			for _, s := range seats {
				if s.Price < bus.Price-50 || s.Price >= bus.Price+100 {
					t.Errorf("bus %s seat %s: price %d outside seater delta", bus.ID, s.Number, s.Price)
				}
			}
		}
	}
}

func TestSeatsReproduciblePerBus(t *testing.T) {
	gen := New(3)
	key := domain.RouteKey{Origin: "Pune", Destination: "Surat", Date: "05/01/2026"}

	bus := gen.Buses(key)[0]
	a := gen.Seats(key, bus)
	b := gen.Seats(key, bus)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seat %d drifted between generations: %+v vs %+v", i, a[i], b[i])
		}
	}
}
