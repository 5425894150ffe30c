package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diestrin/social-media-automation/internal/accounts"
	"github.com/diestrin/social-media-automation/internal/auth"
	"github.com/diestrin/social-media-automation/internal/config"
	"github.com/diestrin/social-media-automation/internal/server"
	"github.com/diestrin/social-media-automation/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	logger.Info("db connected")

	if err := store.AutoMigrate(db); err != nil {
		logger.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("token issuer", "err", err)
		os.Exit(1)
	}

	authSvc := auth.NewService(store.NewUserRepository(db), issuer)
	authHandlers := auth.NewHandlers(authSvc, auth.CookieConfig{
		Name:     cfg.CookieName,
		Secure:   cfg.CookieSecure(),
		SameSite: cfg.CookieSameSite(),
		MaxAge:   24 * time.Hour,
	})
	accountsHandlers := accounts.NewHandlers(accounts.NewService(store.NewAccountRepository(db)))

	handler := server.New(server.Deps{
		Config:   cfg,
		Logger:   logger,
		Issuer:   issuer,
		Auth:     authHandlers,
		Accounts: accountsHandlers,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("stopped")
}
