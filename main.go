package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"eventboard/internal/config"
	"eventboard/internal/database"
	"eventboard/internal/database/migrations"
	eventsapi "eventboard/internal/events/api"
	events_db "eventboard/internal/events/db"
	"eventboard/internal/i18n"
	"eventboard/internal/logger"
	"eventboard/internal/notifier"
	participationapi "eventboard/internal/participation/api"
	participation_db "eventboard/internal/participation/db"
	"eventboard/internal/session"
	usersapi "eventboard/internal/users/api"
	users_db "eventboard/internal/users/db"

	"eventboard/internal/events"
	"eventboard/internal/participation"
	"eventboard/internal/users"
)

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting eventboard initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	bunDB, err := database.Connect(cfg.Database.DSN, cfg.Database.MaxRetries, log)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("%v", err))
	}
	defer bunDB.Close()

	if cfg.Migrations.Auto {
		runner := migrations.NewRunner(bunDB, cfg.Migrations.Dir)
		if err := runner.Up(); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
		}
		if version, err := runner.Version(); err == nil {
			log.Info("DATABASE", fmt.Sprintf("Schema at version %d", version))
		}
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Redis connection error: %v", err))
	}
	defer redisClient.Close()
	log.Info("DATABASE", fmt.Sprintf("Redis connection successful to %s", cfg.Redis.Addr))

	publisher := notifier.NewFromConfig(cfg.Kafka, log)
	defer publisher.Close()
	notify := notifier.New(publisher, cfg.Kafka.Topics, log)

	translator := i18n.NewTranslator(cfg.Locale.Default)

	sessionStore := session.NewRedisStore(redisClient, cfg.Session.TTL)
	cookies := session.NewCookies(cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.TTL)
	gate := session.NewGate(sessionStore, cookies, log, translator)

	eventService := events.NewEventService(&events_db.DB{Bun: bunDB})
	participationService := participation.NewService(&participation_db.DB{Bun: bunDB}, notify)
	userService := users.NewService(&users_db.DB{Bun: bunDB}, notify)

	eventHandler := eventsapi.NewHandler(eventService, log)
	participationHandler := participationapi.NewHandler(participationService, log)
	userHandler := usersapi.NewHandler(userService, sessionStore, cookies, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(gate.Load)

	if cfg.Features.Localization {
		r.Use(i18n.Middleware(cfg.Locale.Default))
		r.Get("/set-lang/{lang}", i18n.SetLangHandler)
		r.Post("/set-lang/{lang}", i18n.SetLangHandler)
		log.Info("ROUTER", "Locale middleware and /set-lang routes registered")
	}

	// --- Public routes ---
	r.Get("/events", eventHandler.List)
	r.Get("/events/{id}/qr", eventHandler.ShareQR)
	r.Get("/event-info/{id}", participationHandler.EventInfo)
	r.Post("/register", userHandler.Register)
	r.Post("/login", userHandler.Login)
	r.Get("/logout", userHandler.Logout)

	// --- Session-gated routes ---
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireUser)

		r.Post("/add", eventHandler.Add)
		r.Get("/edit/{id}", eventHandler.EditForm)
		r.Post("/edit/{id}", eventHandler.Edit)
		r.Post("/delete/{id}", eventHandler.Delete)
		r.Post("/sign-up/{id}", participationHandler.SignUp)
	})
	log.Info("ROUTER", "Event and sign-up routes registered")

	// --- Admin panel (feature-flagged) ---
	if cfg.Features.AdminPanel {
		r.Get("/admin-login", userHandler.AdminLoginForm)
		r.Post("/admin-login", userHandler.AdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireAdmin)

			r.Get("/admin", userHandler.AdminList)
			r.Post("/admin/delete/{id}", userHandler.AdminDelete)
		})
		log.Info("ROUTER", "Admin panel routes registered")
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("eventboard running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Shutdown complete")
	}
}
