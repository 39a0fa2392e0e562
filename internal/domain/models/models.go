// Package models provides the records and JSON response envelopes served by the API.
package models

import (
	"encoding/json"
	"time"
)

// UserRecord - a mock user. Generated per request and never stored.
type UserRecord struct {
	// ID: random numeric identifier, fresh for every generated user.
	ID int `json:"id"`
	// Name: "First Last".
	Name string `json:"name"`
	// Email: derived from the name for synthesized users.
	Email string `json:"email"`
	// Age: in years.
	Age  int    `json:"age"`
	City string `json:"city"`
	// FavoritePokemon: optional catalog id of a Pokemon.
	FavoritePokemon *int `json:"favoritePokemon,omitempty"`
}

// PokemonRecord - a catalog entry. ID is the stable key for point lookups.
type PokemonRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level int    `json:"level"`
	HP    int    `json:"hp"`
}

// AuthRequest is the body of POST /api/auth.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the echoed user of a successful login.
type AuthUser struct {
	Username string `json:"username"`
	ID       int    `json:"id"`
}

// WebhookRequest is the body of POST /api/webhook.
type WebhookRequest struct {
	URL       string          `json:"url" validate:"required"`
	Payload   json.RawMessage `json:"payload"`
	EventType string          `json:"eventType"`
}

// WebhookResult - uniform outcome of a webhook delivery attempt.
type WebhookResult struct {
	Success    bool   `json:"success"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	Response   string `json:"response"`
}

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t the way every timestamp in the API is rendered.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
