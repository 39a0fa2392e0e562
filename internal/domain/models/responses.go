package models

// Envelope is embedded in every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse represents the response for GET /api/users/random.
type UserResponse struct {
	Envelope
	Count int         `json:"count"`
	User  *UserRecord `json:"user"`
}

// PokemonResponse represents the response for single Pokemon lookups.
type PokemonResponse struct {
	Envelope
	Count   int            `json:"count"`
	Pokemon *PokemonRecord `json:"pokemon"`
}

// PokemonListResponse represents the response for GET /api/pokemon.
type PokemonListResponse struct {
	Envelope
	Count   int             `json:"count"`
	Pokemon []PokemonRecord `json:"pokemon"`
}

// AuthResponse represents the response for POST /api/auth.
// Token and User are null on failure.
type AuthResponse struct {
	Envelope
	Token *string   `json:"token"`
	User  *AuthUser `json:"user"`
}

// WebhookResponse represents the response for POST /api/webhook.
type WebhookResponse struct {
	Message    string `json:"message"`
	WebhookResult
}

// HealthResponse represents the response for GET /api/health.
type HealthResponse struct {
	Envelope
	Timestamp string `json:"timestamp"`
}
