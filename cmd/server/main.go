package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexuscrm/internal/config"
	"nexuscrm/internal/notify"
	"nexuscrm/internal/remote"
	"nexuscrm/internal/router"
	"nexuscrm/internal/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logging with console output for development
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error cargando configuración")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if cfg.IsOffline() {
		log.Warn().Msg("Almacén remoto sin configurar: modo degradado con datos de ejemplo")
	}

	breaker := remote.NewBreaker(5, 30*time.Second)
	client := remote.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.RemoteTimeout(), breaker)

	sessions := session.New(client, cfg.AuthInitTimeout())
	notifs := notify.New(cfg.ToastFreshness(), cfg.ToastDuration())

	// Session restore races the remote auth service against the init deadline;
	// the server accepts traffic while it runs.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go sessions.Start(ctx)

	r := router.New(cfg, client, sessions, notifs)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("Servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Error iniciando servidor")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Apagando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Apagado forzado")
	}
	notifs.Close()

	log.Info().Msg("Servidor detenido")
}
