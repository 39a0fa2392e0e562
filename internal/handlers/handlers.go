// Package handlers implements the HTTP endpoints of the service.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"igf/internal/config"
	"igf/internal/domain/models"
	"igf/internal/metrics"
	"igf/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Greeting is the plain-text body of GET /.
const Greeting = "Hello from IGF App"

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	conf  *config.Config
	sugar *zap.SugaredLogger
	*services.CompositeService
}

// NewController creates a Controller.
func NewController(composite *services.CompositeService, sugar *zap.SugaredLogger, conf *config.Config) *Controller {
	return &Controller{
		conf:             conf,
		sugar:            sugar,
		CompositeService: composite,
	}
}

// Home answers with a plain-text greeting.
func (con *Controller) Home() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.sugar.Debugln("Home")
		res.Header().Set("Content-Type", "text/plain; charset=utf-8")
		res.WriteHeader(http.StatusOK)
		if _, err := res.Write([]byte(Greeting)); err != nil {
			con.sugar.Errorf("(Home) write error: %s", err.Error())
		}
	}
}

// Authenticate mocks a login: any non-empty username and password succeed.
func (con *Controller) Authenticate() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.sugar.Debugln("Authentication")

		var body models.AuthRequest
		if err := decodeJSON(res, req, &body); err != nil {
			con.writeJSON(res, http.StatusBadRequest, authFailure("Username and password are required"))
			return
		}

		token, u, err := con.AuthService.Login(body)
		if err != nil {
			con.writeJSON(res, http.StatusBadRequest, authFailure(inputMessage(err, "Username and password are required")))
			return
		}

		if err := con.SessionService.SetTokenCookie(res, token); err != nil {
			con.sugar.Errorf("(Authenticate) Failed to set token cookie: %s", err.Error())
		}

		con.writeJSON(res, http.StatusOK, models.AuthResponse{
			Envelope: models.Envelope{Success: true, Message: "Authentication successful"},
			Token:    &token,
			User:     &u,
		})
	}
}

// Session returns the token stored in the AuthToken cookie.
func (con *Controller) Session() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		token, err := con.SessionService.GetTokenFromCookie(req)
		if err != nil {
			con.writeJSON(res, http.StatusUnauthorized, authFailure("Not authenticated"))
			return
		}

		con.writeJSON(res, http.StatusOK, models.AuthResponse{
			Envelope: models.Envelope{Success: true, Message: "Session found"},
			Token:    &token,
		})
	}
}

// RandomUser returns one generated user.
func (con *Controller) RandomUser() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.sugar.Debugln("Random users")

		u, err := con.UserService.Random()
		if err != nil {
			con.writeJSON(res, http.StatusNotFound, models.UserResponse{
				Envelope: models.Envelope{Message: "No user found"},
			})
			return
		}

		con.writeJSON(res, http.StatusOK, models.UserResponse{
			Envelope: models.Envelope{Success: true, Message: "User found"},
			Count:    1,
			User:     &u,
		})
	}
}

// RandomPokemon returns one Pokemon drawn from the catalog.
func (con *Controller) RandomPokemon() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.sugar.Debugln("Random Pokemon")

		p, err := con.PokemonService.Random()
		if err != nil {
			con.writeJSON(res, http.StatusNotFound, models.PokemonResponse{
				Envelope: models.Envelope{Message: "No Pokemon found"},
			})
			return
		}

		con.writeJSON(res, http.StatusOK, models.PokemonResponse{
			Envelope: models.Envelope{Success: true, Message: "Pokemon found"},
			Count:    1,
			Pokemon:  &p,
		})
	}
}

// ListPokemon returns the whole catalog.
func (con *Controller) ListPokemon() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.sugar.Debugln("All Pokemon")

		list, err := con.PokemonService.List()
		if err != nil {
			con.writeJSON(res, http.StatusNotFound, models.PokemonListResponse{
				Envelope: models.Envelope{Message: "No Pokemon found"},
			})
			return
		}

		con.writeJSON(res, http.StatusOK, models.PokemonListResponse{
			Envelope: models.Envelope{Success: true, Message: "Pokemon found"},
			Count:    len(list),
			Pokemon:  list,
		})
	}
}

// GetPokemon looks a Pokemon up by the {id} route parameter.
func (con *Controller) GetPokemon() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		con.sugar.Debugln("Pokemon by id", id)

		p, err := con.PokemonService.ByID(id)
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			con.writeJSON(res, http.StatusBadRequest, models.PokemonResponse{
				Envelope: models.Envelope{Message: inputMessage(err, "Invalid Pokemon ID")},
			})
		case errors.Is(err, services.ErrNotFound):
			con.writeJSON(res, http.StatusNotFound, models.PokemonResponse{
				Envelope: models.Envelope{Message: "Pokemon not found"},
			})
		case err != nil:
			con.sugar.Errorf("(GetPokemon) lookup %q: %s", id, err.Error())
			con.writeJSON(res, http.StatusInternalServerError, models.PokemonResponse{
				Envelope: models.Envelope{Message: "Internal Server Error"},
			})
		default:
			con.writeJSON(res, http.StatusOK, models.PokemonResponse{
				Envelope: models.Envelope{Success: true, Message: "Pokemon found"},
				Count:    1,
				Pokemon:  &p,
			})
		}
	}
}

// Webhook forwards the caller's payload to the caller's URL.
func (con *Controller) Webhook() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		var body models.WebhookRequest
		if err := decodeJSON(res, req, &body); err != nil {
			metrics.RecordWebhook(metrics.WebhookRejected)
			con.writeJSON(res, http.StatusBadRequest, webhookFailure(http.StatusBadRequest, "Invalid JSON body", ""))
			return
		}

		d, err := con.WebhookService.Deliver(req.Context(), body)

		var dErr *services.DeliveryError
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			metrics.RecordWebhook(metrics.WebhookRejected)
			con.writeJSON(res, http.StatusBadRequest, webhookFailure(http.StatusBadRequest, inputMessage(err, "Invalid webhook request"), ""))
		case errors.As(err, &dErr):
			metrics.RecordWebhook(metrics.WebhookFailed)
			con.sugar.Warnw("webhook delivery failed", "url", body.URL, "event", body.EventType, "error", dErr.Err)
			con.writeJSON(res, http.StatusInternalServerError, webhookFailure(http.StatusInternalServerError, "Webhook delivery failed", dErr.Err.Error()))
		case err != nil:
			metrics.RecordWebhook(metrics.WebhookFailed)
			con.sugar.Errorf("(Webhook) unexpected error: %s", err.Error())
			con.writeJSON(res, http.StatusInternalServerError, webhookFailure(http.StatusInternalServerError, "Webhook delivery failed", err.Error()))
		default:
			metrics.RecordWebhook(metrics.WebhookDelivered)
			con.sugar.Infow("webhook delivered", "url", body.URL, "event", body.EventType, "status", d.Status)
			con.writeJSON(res, http.StatusOK, models.WebhookResponse{
				Message: "Webhook sent",
				WebhookResult: models.WebhookResult{
					Success:    true,
					Status:     d.Status,
					StatusText: d.StatusText,
					Response:   d.Body,
				},
			})
		}
	}
}

// Health reports liveness with the current time.
func (con *Controller) Health() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		con.sugar.Debugln("Health check")
		con.writeJSON(res, http.StatusOK, models.HealthResponse{
			Envelope:  models.Envelope{Success: true, Message: "Server is running"},
			Timestamp: models.FormatTimestamp(time.Now()),
		})
	}
}

// NotFound answers unknown API routes with JSON and everything else from the public directory.
func (con *Controller) NotFound() http.HandlerFunc {
	static := http.FileServer(http.Dir(con.conf.PublicDir))
	return func(res http.ResponseWriter, req *http.Request) {
		if isAPIPath(req.URL.Path) || (req.Method != http.MethodGet && req.Method != http.MethodHead) {
			con.writeJSON(res, http.StatusNotFound, errorEnvelope("Route not found"))
			return
		}
		static.ServeHTTP(res, req)
	}
}
