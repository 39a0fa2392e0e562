// Package app wires configuration, storage, services and HTTP routing together.
package app

import (
	"net/http"
	"time"

	"igf/internal/config"
	"igf/internal/handlers"
	"igf/internal/random"
	"igf/internal/services"
	"igf/internal/storage"
	"igf/internal/user"

	"go.uber.org/zap"
)

// SelectStorage - selects the catalog source: file when configured, memory otherwise.
func SelectStorage(c *config.Config, logger *zap.SugaredLogger) storage.CatalogStorage {
	if c.CatalogFile != "" {
		logger.Infof("try using catalog file %s", c.CatalogFile)
		s, err := storage.NewStorageFile(c.CatalogFile)
		if err == nil {
			return s
		}
		logger.Errorf("catalog file error: %s", err.Error())
	}

	logger.Infof("using built-in catalog")
	return storage.NewStorageMemory()
}

// NewWebhookClient returns the HTTP client used for outbound webhook deliveries.
func NewWebhookClient(c *config.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = c.WebhookTimeoutDuration()
	return &http.Client{Transport: transport}
}

// NewController builds every service and the HTTP controller on top of them.
func NewController(c *config.Config, logger *zap.SugaredLogger, st storage.CatalogStorage, rnd random.Source, client services.Doer) *handlers.Controller {
	composite := services.NewCompositeService(
		services.NewPokemonService(st, rnd),
		services.NewUserService(st, rnd),
		services.NewAuthService(rnd),
		services.NewWebhookService(client, c.WebhookTimeoutDuration()),
		user.NewSessionService(c.CookieHashKey),
	)
	return handlers.NewController(composite, logger, c)
}

// CreateServer creates and configures an HTTP server.
func CreateServer(c *config.Config, handler http.Handler, logger *zap.SugaredLogger) *http.Server {
	scheme := "http"
	if c.TLSEnabled() {
		scheme = "https"
	}
	logger.Infof("IGF App at %s (%s)", c.Addr, scheme)

	return &http.Server{
		Addr:              c.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
	}
}
