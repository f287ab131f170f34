package query

import (
	"context"
	"fmt"

	"github.com/nxtbus/nxtbus-go/internal/domain"
	"github.com/nxtbus/nxtbus-go/internal/search"
)

// Service answers the search, bus-detail, and seat-map queries the booking
// flow runs against the cached inventory.
type Service struct {
	cache *search.Cache
}

func New(cache *search.Cache) *Service {
	return &Service{cache: cache}
}

// SearchBuses returns the inventory for a route and date.
//
// Parameters:
//   - ctx: request-scoped context.
//   - origin, destination, date: the route key fields; normalized before use.
//
// Returns:
//   - []domain.Bus: the cached (or freshly generated) bus list.
func (s *Service) SearchBuses(ctx context.Context, origin, destination, date string) ([]domain.Bus, error) {
	const op = "service.query.SearchBuses"

	buses, err := s.cache.Search(ctx, origin, destination, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buses, nil
}

// GetBus retrieves one bus of the route's inventory by id.
//
// Returns:
//   - error: query.ErrBusNotFound if the id is absent even after a fresh search.
func (s *Service) GetBus(ctx context.Context, busID, origin, destination, date string) (*domain.Bus, error) {
	const op = "service.query.GetBus"

	bus, ok, err := s.cache.Bus(ctx, busID, origin, destination, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, busID, ErrBusNotFound)
	}
	return &bus, nil
}

// GetSeats returns the seat map of one bus. The map is generated once per
// bus and cached, so revisiting it shows the same seats and prices.
//
// Returns:
//   - error: query.ErrBusNotFound if the bus id is absent from the inventory.
func (s *Service) GetSeats(ctx context.Context, busID, origin, destination, date string) ([]domain.Seat, error) {
	const op = "service.query.GetSeats"

	seats, ok, err := s.cache.Seats(ctx, busID, origin, destination, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, busID, ErrBusNotFound)
	}
	return seats, nil
}
