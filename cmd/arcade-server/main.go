package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"token-arcade/internal/config"
	"token-arcade/internal/logging"
	"token-arcade/internal/store"
	httptransport "token-arcade/internal/transport/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if err := st.Bootstrap(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	seedAdmin(st, cfg.AdminUsername, cfg.AdminPassword)
	startSessionJanitor(context.Background(), st, time.Hour)

	r := httptransport.NewRouter(st, cfg)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

// seedAdmin provisions the administrator account from env on first boot.
func seedAdmin(st *store.Store, username, password string) {
	if username == "" || password == "" {
		return
	}
	ctx := context.Background()
	_, err := st.GetPlayerByUsername(ctx, username)
	if err == nil {
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("seed admin lookup error")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Error().Err(err).Msg("seed admin hash error")
		return
	}
	if _, err := st.CreatePlayer(ctx, username, string(hash), 0, true); err != nil {
		log.Error().Err(err).Msg("seed admin error")
		return
	}
	log.Info().Str("username", username).Msg("seeded admin player")
}

func startSessionJanitor(ctx context.Context, st *store.Store, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := st.DeleteExpiredSessions(ctx); err != nil {
					log.Error().Err(err).Msg("session janitor error")
				} else if n > 0 {
					log.Info().Int64("deleted", n).Msg("expired sessions removed")
				}
			}
		}
	}()
}
