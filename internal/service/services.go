package service

import (
	"log/slog"

	"github.com/nxtbus/nxtbus-go/internal/payment"
	"github.com/nxtbus/nxtbus-go/internal/repository"
	"github.com/nxtbus/nxtbus-go/internal/search"
	"github.com/nxtbus/nxtbus-go/internal/service/booking"
	"github.com/nxtbus/nxtbus-go/internal/service/query"
)

type Services struct {
	Query   *query.Service
	Booking *booking.Service
}

type Config struct {
	Booking booking.Config
}

func NewServices(
	cache *search.Cache,
	repo *repository.BookingRepo,
	gateway payment.Gateway,
	logger *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Query:   query.New(cache),
		Booking: booking.New(repo, gateway, logger, cfg.Booking),
	}
}
