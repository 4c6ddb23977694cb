package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/domain/auth"
	"fintrack/internal/domain/credit"
	"fintrack/internal/domain/expense"
	"fintrack/internal/domain/snapshot"
	"fintrack/internal/domain/tax"
	"fintrack/internal/platform/config"
	"fintrack/internal/platform/db"
	"fintrack/internal/platform/jobs"
	"fintrack/internal/platform/logging"
	"fintrack/internal/platform/metrics"
	"fintrack/internal/transport/http/api"
	authhandler "fintrack/internal/transport/http/handlers/auth"
	cardshandler "fintrack/internal/transport/http/handlers/cards"
	expenseshandler "fintrack/internal/transport/http/handlers/expenses"
	paycheckhandler "fintrack/internal/transport/http/handlers/paycheck"
	snapshothandler "fintrack/internal/transport/http/handlers/snapshot"
	"fintrack/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	userStore := auth.NewStore(pool)
	taxStore := tax.NewStore(pool)
	cardStore := credit.NewStore(pool)
	expenseStore := expense.NewStore(pool)
	rateTables := tax.DefaultRateTables()
	snapshotService := snapshot.NewService(taxStore, cardStore, expenseStore, rateTables)

	jobService := jobs.New(pool, cardStore)
	if err := jobService.Start(ctx, cfg.DueDateRefreshCron); err != nil {
		log.Fatalf("job scheduler failed: %v", err)
	}
	defer jobService.Stop()

	collector := metrics.New()
	isProd := cfg.Environment == "production"

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.SecureHeaders(isProd))
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(userStore, cfg.JWTSecret, cfg.AllowSignup)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			paycheckhandler.NewHandler(taxStore, rateTables).RegisterRoutes(r)
			cardshandler.NewHandler(cardStore).RegisterRoutes(r)
			expenseshandler.NewHandler(expenseStore).RegisterRoutes(r)
			snapshothandler.NewHandler(snapshotService).RegisterRoutes(r)
		})
	})

	slog.Info("fintrack server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
