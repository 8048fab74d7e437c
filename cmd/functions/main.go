// Command functions runs the stateless deployment shape of the contact
// intake backend. Each endpoint is an independent net/http handler with its
// own CORS handling, mirroring per-request function invocation. Without
// DB_PATH the handlers run against the null store and retain nothing; with
// DB_PATH they persist to SQLite using timestamp-derived contact ids.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gigagency/go-contact-backend/internal/config"
	"github.com/gigagency/go-contact-backend/internal/funcs"
	"github.com/gigagency/go-contact-backend/internal/mail"
	"github.com/gigagency/go-contact-backend/internal/repo"
	"github.com/gigagency/go-contact-backend/internal/services"
	"github.com/gigagency/go-contact-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	notifier := mail.NewSMTPNotifier(cfg.Mail)
	deps := funcs.NewDeps(notifier)

	// DB_PATH opts this shape into durable storage. Ids are derived from the
	// submission timestamp so each invocation can mint one without a shared
	// sequence.
	var closeDB func()
	if path := os.Getenv("DB_PATH"); path != "" {
		db, err := repo.OpenSQLite(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to open database")
		}
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		deps.Svc = &services.ContactService{
			Store:    &services.DBStore{DB: db, IDs: &repo.TimestampIDs{}},
			Notifier: notifier,
		}
		deps.Notice = ""
		closeDB = func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/contact", funcs.Contact(deps))
	mux.HandleFunc("/api/contacts", funcs.Contacts(deps))
	mux.HandleFunc("/api/health", funcs.Health(deps))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Bool("email_notifications", notifier.Enabled()).
			Bool("storage", closeDB != nil).
			Msg("function handlers listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if closeDB != nil {
		closeDB()
	}
}
