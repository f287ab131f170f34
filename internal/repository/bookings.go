package repository

import (
	"context"
	"fmt"

	"github.com/nxtbus/nxtbus-go/internal/domain"
	"github.com/nxtbus/nxtbus-go/internal/repository/kv"
)

// bookingsKey names the single blob holding the whole booking collection.
// Backends may namespace it further.
const bookingsKey = "bookings"

// BookingRepo persists the booking collection through a blob store. Every
// operation is a whole-collection read or read-modify-write; the collection
// is small (one device, one user) and the single blob keeps the layout
// compatible with the original storage.
type BookingRepo struct {
	store kv.Store
}

func NewBookingRepo(store kv.Store) *BookingRepo {
	return &BookingRepo{store: store}
}

// Save appends the booking. A PNR already present in the collection is
// rejected with ErrConflict so that find-by-PNR stays well defined.
func (r *BookingRepo) Save(ctx context.Context, booking domain.Booking) error {
	const op = "repository.BookingRepo.Save"

	bookings, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range bookings {
		if b.PNR == booking.PNR {
			return fmt.Errorf("%s: pnr %s: %w", op, booking.PNR, ErrConflict)
		}
	}

	return r.persist(ctx, op, append(bookings, booking))
}

// List returns every stored booking, oldest first. Legacy records are
// normalized during decode, so repeated calls with no intervening write
// yield equal collections.
func (r *BookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	const op = "repository.BookingRepo.List"

	data, ok, err := r.store.Get(ctx, bookingsKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return []domain.Booking{}, nil
	}

	bookings, err := decodeBookings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bookings, nil
}

// FindByPNR returns the first booking with the given PNR.
func (r *BookingRepo) FindByPNR(ctx context.Context, pnr string) (*domain.Booking, error) {
	const op = "repository.BookingRepo.FindByPNR"

	bookings, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range bookings {
		if bookings[i].PNR == pnr {
			return &bookings[i], nil
		}
	}
	return nil, fmt.Errorf("%s: pnr %s: %w", op, pnr, ErrNotFound)
}

// Delete removes every record with the given PNR for good. This is a hard
// removal, distinct from a CANCELLED status transition.
func (r *BookingRepo) Delete(ctx context.Context, pnr string) error {
	const op = "repository.BookingRepo.Delete"

	bookings, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := bookings[:0:0]
	for _, b := range bookings {
		if b.PNR != pnr {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookings) {
		return fmt.Errorf("%s: pnr %s: %w", op, pnr, ErrNotFound)
	}

	return r.persist(ctx, op, kept)
}

// SetStatus transitions the booking's status in place.
func (r *BookingRepo) SetStatus(ctx context.Context, pnr string, status domain.BookingStatus) error {
	const op = "repository.BookingRepo.SetStatus"

	bookings, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	found := false
	for i := range bookings {
		if bookings[i].PNR == pnr {
			bookings[i].Status = status
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%s: pnr %s: %w", op, pnr, ErrNotFound)
	}

	return r.persist(ctx, op, bookings)
}

func (r *BookingRepo) persist(ctx context.Context, op string, bookings []domain.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.store.Put(ctx, bookingsKey, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
