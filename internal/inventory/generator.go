package inventory

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/nxtbus/nxtbus-go/internal/domain"
)

// Generator produces the mock bus and seat inventory for a route key. The
// output is randomized in shape but reproducible: the PRNG is seeded from the
// normalized route key (and bus id for seat maps), so regenerating the same
// key yields the same inventory even after a cache miss.
type Generator struct {
	seed int64
}

func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

func (g *Generator) rng(parts ...string) *rand.Rand {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return rand.New(rand.NewSource(g.seed ^ int64(h.Sum64())))
}

// Buses generates 8-14 buses for the key, sorted by departure time. The
// "HH:MM" zero-padded form makes the lexicographic sort a time sort.
func (g *Generator) Buses(key domain.RouteKey) []domain.Bus {
	rng := g.rng("buses", key.String())

	count := 8 + rng.Intn(7)
	buses := make([]domain.Bus, 0, count)

	for i := 0; i < count; i++ {
		tag := classTags[rng.Intn(len(classTags))]
		class := domain.ClassFromTag(tag)

		hour := 6 + rng.Intn(18)
		minute := departureMinutes[rng.Intn(len(departureMinutes))]
		journeyHours := 8 + rng.Intn(5)
		arrivalHour := (hour + journeyHours) % 24

		totalSeats := class.TotalSeats()

		buses = append(buses, domain.Bus{
			ID:            fmt.Sprintf("BUS%03d", i+1),
			OperatorName:  operators[rng.Intn(len(operators))],
			ClassTag:      tag,
			Class:         class,
			DepartureTime: fmt.Sprintf("%02d:%02d", hour, minute),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", arrivalHour, minute),
			// Minutes are rendered as a literal zero regardless of the
			// snapped departure minute; the original does the same.
			Duration:       fmt.Sprintf("%dh 0m", journeyHours),
			Distance:       fmt.Sprintf("%dkm", 400+rng.Intn(200)),
			Price:          basePrice(rng, class),
			AvailableSeats: availableSeats(rng, class),
			TotalSeats:     totalSeats,
			Amenities:      pickAmenities(rng),
			Rating:         rng.Float32()*2 + 3,
		})
	}

	sort.Slice(buses, func(i, j int) bool {
		return buses[i].DepartureTime < buses[j].DepartureTime
	})

	return buses
}

// Seats generates the seat map for one bus of the key's inventory. Exactly
// TotalSeats-AvailableSeats slots come out unavailable, chosen uniformly.
func (g *Generator) Seats(key domain.RouteKey, bus domain.Bus) []domain.Seat {
	rng := g.rng("seats", key.String(), bus.ID)

	booked := bus.TotalSeats - bus.AvailableSeats
	if booked < 0 {
		booked = 0
	}

	bookedSlots := make(map[int]bool, booked)
	for _, slot := range rng.Perm(bus.TotalSeats)[:booked] {
		bookedSlots[slot+1] = true
	}

	if bus.Class.IsSleeper() {
		// Two berth columns: slot i maps to L<i>, slot i+12 to R<i>.
		seats := make([]domain.Seat, 0, 24)
		for i := 1; i <= 12; i++ {
			seats = append(seats, domain.Seat{
				Number:    fmt.Sprintf("L%d", i),
				Available: !bookedSlots[i],
				Type:      domain.SeatTypeSleeper,
				Price:     bus.Price + rng.Intn(200),
			})
			seats = append(seats, domain.Seat{
				Number:    fmt.Sprintf("R%d", i),
				Available: !bookedSlots[i+12],
				Type:      domain.SeatTypeSleeper,
				Price:     bus.Price + rng.Intn(200),
			})
		}
		return seats
	}

	seats := make([]domain.Seat, 0, bus.TotalSeats)
	for i := 1; i <= bus.TotalSeats; i++ {
		seats = append(seats, domain.Seat{
			Number:    fmt.Sprintf("%d", i),
			Available: !bookedSlots[i],
			Type:      domain.SeatTypeSeater,
			Price:     bus.Price - 50 + rng.Intn(150),
		})
	}
	return seats
}

func basePrice(rng *rand.Rand, class domain.BusClass) int {
	switch {
	case class == domain.SleeperAC:
		return 1000 + rng.Intn(500)
	case class == domain.SleeperNonAC:
		return 700 + rng.Intn(400)
	case class == domain.SeaterAC:
		return 600 + rng.Intn(300)
	default:
		return 400 + rng.Intn(300)
	}
}

func availableSeats(rng *rand.Rand, class domain.BusClass) int {
	if class.IsSleeper() {
		return 5 + rng.Intn(15)
	}
	return 5 + rng.Intn(30)
}

func pickAmenities(rng *rand.Rand) []string {
	shuffled := make([]string, len(amenityCatalog))
	copy(shuffled, amenityCatalog)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:2+rng.Intn(4)]
}
