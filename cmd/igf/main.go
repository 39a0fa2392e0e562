package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"igf/internal/app"
	"igf/internal/config"
	"igf/internal/logger"
	"igf/internal/random"
)

const shutdownTimeout = 10 * time.Second

func main() {
	c := config.NewConfig()
	if err := config.Init(c); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.NewLogger(c.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = sugar.Sync()
	}()

	st := app.SelectStorage(c, sugar)
	controller := app.NewController(c, sugar, st, random.NewSource(), app.NewWebhookClient(c))
	r := app.NewRouter(c, controller)
	server := app.CreateServer(c, r, sugar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		var err error
		if c.TLSEnabled() {
			err = server.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	sugar.Infof("Health check: GET %s/api/health", c.Addr)
	<-ctx.Done()

	sugar.Infof("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("Shutdown error: %v", err)
	}
}
