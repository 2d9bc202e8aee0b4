package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/hustle-events/config"
	"github.com/Eursukkul/hustle-events/internal/consumer"
	"github.com/Eursukkul/hustle-events/internal/fixtures"
	"github.com/Eursukkul/hustle-events/internal/handler"
	"github.com/Eursukkul/hustle-events/internal/middleware"
	"github.com/Eursukkul/hustle-events/internal/repository"
	"github.com/Eursukkul/hustle-events/internal/service"
	"github.com/Eursukkul/hustle-events/pkg/cache"
	"github.com/Eursukkul/hustle-events/pkg/database"
	"github.com/Eursukkul/hustle-events/pkg/logger"
	"github.com/Eursukkul/hustle-events/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := cfg.SQLitePath
	if cfg.DBDriver == database.DriverPostgres {
		target = cfg.DSN()
	}
	db, err := database.Open(cfg.DBDriver, target)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to open database")
	}

	eventRepo := repository.NewEventRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	if cfg.SeedOnStart {
		if err := seed(ctx, cfg.SeedFile, eventRepo, profileRepo, membershipRepo, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer pub.Close()
		publisher = pub

		cons, err := rabbitmq.NewConsumer(cfg.RabbitURL, rabbitmq.MembershipQueue, rabbitmq.KeyEventCreated)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create consumer")
		}
		defer cons.Close()

		msgs, err := cons.Consume()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start consuming")
		}
		consumer.NewMembershipConsumer(membershipRepo, log).Start(ctx, msgs)
	} else {
		log.Warn().Msg("RABBITMQ_URL not set, messaging disabled")
	}

	store := openStore(ctx, cfg.RedisURL, log)
	defer store.Close()

	eventSvc := service.NewEventService(eventRepo, publisher, log, service.WithLookupFallback(cfg.EventLookupFallback))
	profileSvc := service.NewProfileService(profileRepo, membershipRepo, store, publisher, log, cfg.NoticeTTL)
	editor := service.NewProfileEditor(profileSvc, store, cfg.DraftTTL, log)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.NewErrorHandler(log)
	e.Validator = middleware.Validator{}
	e.Use(echoMw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "hustle-events"})
	})

	api := e.Group("/api/v1")
	handler.NewEventHandler(eventSvc).RegisterRoutes(api.Group("/events"))
	handler.NewProfileHandler(profileSvc, editor).RegisterRoutes(api.Group("/profiles"))

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("hustle-events starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	closeDB(db, log)
}

// openStore uses redis when configured and reachable, the in-process store
// otherwise.
func openStore(ctx context.Context, url string, log zerolog.Logger) cache.Store {
	if url == "" {
		log.Info().Msg("REDIS_URL not set, using in-memory draft store")
		return cache.NewMemoryStore()
	}
	store, err := cache.NewRedisStore(ctx, url, "hustle:")
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory draft store")
		return cache.NewMemoryStore()
	}
	return store
}

func seed(
	ctx context.Context,
	path string,
	events repository.EventRepository,
	profiles repository.ProfileRepository,
	memberships repository.MembershipRepository,
	log zerolog.Logger,
) error {
	set, err := fixtures.Load(path)
	if err != nil {
		return err
	}
	if err := events.Seed(ctx, set.Events); err != nil {
		return err
	}
	if err := profiles.Seed(ctx, set.Profiles); err != nil {
		return err
	}
	for i := range set.Memberships {
		if _, err := memberships.Register(ctx, &set.Memberships[i]); err != nil {
			return err
		}
	}
	log.Info().
		Int("events", len(set.Events)).
		Int("profiles", len(set.Profiles)).
		Int("memberships", len(set.Memberships)).
		Msg("seed data loaded")
	return nil
}

func closeDB(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("close database")
	}
}
