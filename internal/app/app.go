package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nxtbus/nxtbus-go/internal/config"
	"github.com/nxtbus/nxtbus-go/internal/inventory"
	"github.com/nxtbus/nxtbus-go/internal/payment"
	"github.com/nxtbus/nxtbus-go/internal/repository"
	"github.com/nxtbus/nxtbus-go/internal/repository/kv"
	pgrepo "github.com/nxtbus/nxtbus-go/internal/repository/postgres"
	redisrepo "github.com/nxtbus/nxtbus-go/internal/repository/redis"
	"github.com/nxtbus/nxtbus-go/internal/search"
	"github.com/nxtbus/nxtbus-go/internal/service"
	"github.com/nxtbus/nxtbus-go/internal/service/booking"
)

// App owns the wired component graph: inventory generation, the search
// cache, the booking store on its configured backend, and the services on
// top of them.
type App struct {
	Services *service.Services
	Cache    *search.Cache

	cfg     *config.Config
	logger  *slog.Logger
	closers []func()
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	gen := inventory.New(cfg.Search.Seed)

	cache, err := search.New(gen, search.Config{
		Capacity:      cfg.Search.CacheCapacity,
		SearchDelay:   cfg.Search.SearchDelay,
		SeatLoadDelay: cfg.Search.SeatLoadDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize search cache: %w", err)
	}
	a.Cache = cache

	store, err := a.newBlobStore(ctx)
	if err != nil {
		return nil, err
	}

	repo := repository.NewBookingRepo(store)
	gateway := &payment.Sandbox{Decline: cfg.Payment.Decline}

	a.Services = service.NewServices(cache, repo, gateway, logger, service.Config{
		Booking: booking.Config{Currency: cfg.Payment.Currency},
	})

	return a, nil
}

// Close releases backend connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *App) newBlobStore(ctx context.Context) (kv.Store, error) {
	switch a.cfg.Store.Backend {
	case config.StoreMemory:
		return kv.NewMemory(), nil

	case config.StoreFile:
		store, err := kv.NewFile(a.cfg.Store.FileDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		return store, nil

	case config.StoreRedis:
		store, err := redisrepo.Open(ctx, redisrepo.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis store: %w", err)
		}
		a.closers = append(a.closers, func() { _ = store.Close() })
		return store, nil

	case config.StorePostgres:
		store, err := pgrepo.Open(ctx, pgrepo.Options{DSN: a.cfg.Postgres.DSN()})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres store: %w", err)
		}
		a.closers = append(a.closers, store.Close)

		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to prepare postgres schema: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", a.cfg.Store.Backend)
	}
}
