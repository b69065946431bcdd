package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/auth"
	"github.com/TkachenkoRP/spring-booking/internal/booking"
	"github.com/TkachenkoRP/spring-booking/internal/config"
	"github.com/TkachenkoRP/spring-booking/internal/docs"
	"github.com/TkachenkoRP/spring-booking/internal/event"
	"github.com/TkachenkoRP/spring-booking/internal/health"
	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/seed"
	"github.com/TkachenkoRP/spring-booking/internal/stats"
	"github.com/TkachenkoRP/spring-booking/internal/user"
	"golang.org/x/sync/errgroup"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	middlewares     []func(http.Handler) http.Handler
	baseCtx         context.Context
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	workers         *errgroup.Group
	listener        *event.Listener
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setup(ctx context.Context) error {
	p := a.provider
	publisher := event.NewKafkaPublisher(p.Producer, a.config.Kafka, p.Metrics)
	store := event.NewMongoStore(p.Mongo)

	userModule := user.NewModule(&user.Deps{
		DB:        p.DB,
		TxManager: p.TxMgr,
		Hasher:    p.Hasher,
		Publisher: publisher,
		Metrics:   p.Metrics,
	})
	authModule := auth.NewModule(&auth.Deps{
		Cfg:     a.config.JWT,
		Hasher:  p.Hasher,
		Signer:  p.Signer,
		UserSvc: userModule.Service(),
	})
	hotelModule := hotel.NewModule(&hotel.Deps{
		DB:        p.DB,
		TxManager: p.TxMgr,
		Metrics:   p.Metrics,
	})
	roomModule := room.NewModule(&room.Deps{
		DB:     p.DB,
		Hotels: hotelModule.Service(),
	})
	bookingModule := booking.NewModule(&booking.Deps{
		DB:        p.DB,
		TxManager: p.TxMgr,
		Rooms:     roomModule.Service(),
		Users:     userModule.Service(),
		Publisher: publisher,
		Metrics:   p.Metrics,
	})
	statsModule := stats.NewModule(&stats.Deps{
		Cfg:     a.config.Stats,
		Store:   store,
		Metrics: p.Metrics,
	})

	docsHandler, err := docs.NewHandler()
	if err != nil {
		return err
	}

	if a.config.Seed.Enabled {
		seeder := seed.New(&seed.Deps{
			TxManager: p.TxMgr,
			Hasher:    p.Hasher,
			Users:     userModule.Repository(),
			Hotels:    hotelModule.Repository(),
			Rooms:     roomModule.Repository(),
			Bookings:  bookingModule.Repository(),
		})
		if _, err := seeder.Run(ctx); err != nil {
			return err
		}
	}

	if p.Consumer != nil {
		a.listener = event.NewListener(p.Consumer, store, a.config.Kafka, p.Metrics)
	}

	g := newGuards(authModule.Service(), p.Validator, a.config.Server.MaxBodyBytes)
	r := p.Router
	mountAuthRoutes(r, authModule.Handler(), g)
	mountUserRoutes(r, userModule.Handler(), g)
	mountHotelRoutes(r, hotelModule.Handler(), g)
	mountRoomRoutes(r, roomModule.Handler(), g)
	mountBookingRoutes(r, bookingModule.Handler(), g)
	mountStatsRoutes(r, statsModule.Handler(), g)
	mountOpsRoutes(r, docsHandler, health.NewHandler(p.DB), p.Metrics.Handler())

	return nil
}

// Start serves HTTP and runs the event listener until ctx is done or the
// server fails.
func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	if err := a.setup(ctx); err != nil {
		return err
	}

	var workerCtx context.Context
	a.workers, workerCtx = errgroup.WithContext(a.baseCtx)
	if a.listener != nil {
		a.workers.Go(func() error {
			return a.listener.Run(workerCtx)
		})
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	case <-workerCtx.Done():
		if err := a.workers.Wait(); err != nil {
			return fmt.Errorf("event listener: %w", err)
		}
		return nil
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown server: %w", err))
	}

	if a.workers != nil {
		if err := a.workers.Wait(); err != nil {
			errs = append(errs, fmt.Errorf("stop event listener: %w", err))
		}
	}

	if a.provider.Consumer != nil {
		if err := a.provider.Consumer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka consumer: %w", err))
		}
	}
	if a.provider.Producer != nil {
		if err := a.provider.Producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka producer: %w", err))
		}
	}

	return errors.Join(errs...)
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	baseCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return baseCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		baseCtx:         baseCtx,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
