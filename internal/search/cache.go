package search

import (
	"context"
	"errors"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/nxtbus/nxtbus-go/internal/domain"
	"github.com/nxtbus/nxtbus-go/internal/inventory"
)

// Cache memoizes generated inventories by normalized route key so that every
// screen of one session observes the same bus and seat data. The map is a
// bounded LRU; evicted keys simply regenerate, and regeneration is
// reproducible, so eviction cannot cause price or availability drift.
type Config struct {
	Capacity      int
	SearchDelay   time.Duration
	SeatLoadDelay time.Duration
}

type Cache struct {
	gen    *inventory.Generator
	routes *lru.Cache[string, *routeEntry]
	sf     singleflight.Group
	cfg    Config
}

type routeEntry struct {
	key   domain.RouteKey
	buses []domain.Bus

	mu    sync.Mutex
	seats map[string][]domain.Seat
}

func New(gen *inventory.Generator, cfg Config) (*Cache, error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 32
	}

	routes, err := lru.New[string, *routeEntry](cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &Cache{gen: gen, routes: routes, cfg: cfg}, nil
}

// Search returns the bus list for the route, generating and caching it on
// first sight of the key. Cache hits return immediately; only generation pays
// the simulated lookup latency.
func (c *Cache) Search(ctx context.Context, origin, destination, date string) ([]domain.Bus, error) {
	ent, err := c.entry(ctx, origin, destination, date)
	if err != nil {
		return nil, err
	}
	return ent.buses, nil
}

// Bus finds one bus by id, preferring the cached list for the key. A missing
// cache entry triggers a regular search first.
func (c *Cache) Bus(ctx context.Context, busID, origin, destination, date string) (domain.Bus, bool, error) {
	ent, err := c.entry(ctx, origin, destination, date)
	if err != nil {
		return domain.Bus{}, false, err
	}

	for _, b := range ent.buses {
		if b.ID == busID {
			return b, true, nil
		}
	}
	return domain.Bus{}, false, nil
}

// Seats returns the seat map for one bus of the route, generated once per
// bus and cached so revisiting the seat screen never shows different prices.
func (c *Cache) Seats(ctx context.Context, busID, origin, destination, date string) ([]domain.Seat, bool, error) {
	ent, err := c.entry(ctx, origin, destination, date)
	if err != nil {
		return nil, false, err
	}

	var bus domain.Bus
	found := false
	for _, b := range ent.buses {
		if b.ID == busID {
			bus, found = b, true
			break
		}
	}
	if !found {
		return nil, false, nil
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	if seats, ok := ent.seats[busID]; ok {
		return seats, true, nil
	}

	if err := wait(ctx, c.cfg.SeatLoadDelay); err != nil {
		return nil, false, err
	}

	seats := c.gen.Seats(ent.key, bus)
	ent.seats[busID] = seats
	return seats, true, nil
}

// Len reports how many route keys are currently cached.
func (c *Cache) Len() int {
	return c.routes.Len()
}

func (c *Cache) entry(ctx context.Context, origin, destination, date string) (*routeEntry, error) {
	key := domain.RouteKey{Origin: origin, Destination: destination, Date: date}.Normalize()
	ck := key.String()

	if ent, ok := c.routes.Get(ck); ok {
		return ent, nil
	}

	// The generation itself runs detached from any one caller, so a caller
	// cancelling mid-flight cannot fail the coalesced callers behind it.
	// Each caller waits on its own context instead.
	ch := c.sf.DoChan(ck, func() (any, error) {
		if ent, ok := c.routes.Get(ck); ok {
			return ent, nil
		}

		if err := wait(context.WithoutCancel(ctx), c.cfg.SearchDelay); err != nil {
			return nil, err
		}

		ent := &routeEntry{
			key:   key,
			buses: c.gen.Buses(key),
			seats: make(map[string][]domain.Seat),
		}
		c.routes.Add(ck, ent)
		return ent, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		ent, ok := res.Val.(*routeEntry)
		if !ok {
			return nil, errors.New("type assertion failed")
		}
		return ent, nil
	}
}

// wait sleeps for the simulated latency but aborts as soon as the caller
// abandons the request.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
