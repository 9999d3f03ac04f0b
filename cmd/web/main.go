package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"requestdesk/internal/desk"
	"requestdesk/internal/httpapi"
	"requestdesk/internal/metrics"
	"requestdesk/internal/session"
	"requestdesk/pkg/config"
	"requestdesk/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	store, err := session.NewStore(session.StoreConfig{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	}, func() *desk.Desk {
		return desk.New(desk.WithObserver(m))
	})
	if err != nil {
		logger.Fatalf("session store: %v", err)
	}
	defer store.Close()

	sessions, err := session.NewManager(store, session.ManagerConfig{
		Secret:     []byte(cfg.Session.Secret),
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.SecureCookie,
		Created:    m.SessionCreated,
	})
	if err != nil {
		logger.Fatalf("session manager: %v", err)
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg:      cfg,
		Logger:   logger,
		Sessions: sessions,
		Metrics:  m,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("env", cfg.AppEnv).Infof("http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
}
