package main

import (
	"context"
	"database/sql"
	"errors"
	"mobile-depot-planner/internal/adapters/publisher"
	"mobile-depot-planner/internal/adapters/repositories"
	"mobile-depot-planner/internal/api"
	"mobile-depot-planner/internal/config"
	"mobile-depot-planner/internal/platform/db"
	"mobile-depot-planner/internal/platform/obs"
	"mobile-depot-planner/internal/ports"
	"mobile-depot-planner/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires concrete adapters (SQL or memory profiles, Redis or log publisher)
// behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	if err := obs.SetupLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profiles, closeDB, err := openProfiles(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeDB()

	pub, closePub, err := openPublisher(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closePub()

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), max(cfg.RateLimitBurst, 1))
	}

	router := api.NewRouter(api.Deps{
		Profiles:    profiles,
		Publisher:   pub,
		Search:      services.SearchOptions{Seed: cfg.SearchSeed, Workers: cfg.SearchWorkers},
		PlanLimiter: limiter,
	})

	// Write timeout covers a full grid search on large inputs.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logrus.WithField("addr", srv.Addr).Info("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal(err)
	}
}

// openProfiles returns the configured profile store, seeded from YAML when
// the file exists.
func openProfiles(ctx context.Context, cfg config.Config) (ports.ProfileRepository, func(), error) {
	var (
		repo    ports.ProfileRepository
		conn    *sql.DB
		closeDB = func() {}
	)

	if cfg.DBDriver == "" {
		repo = repositories.NewMemoryProfileRepository()
	} else {
		dialect, err := repositories.DialectFor(cfg.DBDriver)
		if err != nil {
			return nil, nil, err
		}
		conn, err = db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closeDB = func() { _ = conn.Close() }

		if err := repositories.InitSchema(ctx, conn); err != nil {
			closeDB()
			return nil, nil, err
		}
		repo = repositories.NewSQLProfileRepository(conn, dialect)
	}

	if _, err := os.Stat(cfg.ProfilesPath); err == nil {
		n, err := repositories.SeedFromYAML(ctx, repo, cfg.ProfilesPath)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		logrus.WithField("profiles", n).WithField("path", cfg.ProfilesPath).Info("profiles seeded")
	}

	return repo, closeDB, nil
}

func openPublisher(cfg config.Config) (ports.PlanPublisher, func(), error) {
	if cfg.RedisURL == "" {
		logrus.Info("REDIS_URL not set, plans are only logged")
		return publisher.LogPublisher{}, func() {}, nil
	}

	pub, err := publisher.NewRedisStreamPublisherFromURL(cfg.RedisURL, cfg.ResultStream)
	if err != nil {
		return nil, nil, err
	}
	return pub, func() { _ = pub.Close() }, nil
}
