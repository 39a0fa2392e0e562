package services

import (
	"igf/internal/user"
)

// CompositeService bundles the services used by the HTTP controller.
type CompositeService struct {
	PokemonService PokemonService
	UserService    UserService
	AuthService    AuthService
	WebhookService WebhookService
	SessionService user.SessionService
}

func NewCompositeService(pokemon PokemonService, users UserService, auth AuthService, webhook WebhookService, sessions user.SessionService) *CompositeService {
	return &CompositeService{
		PokemonService: pokemon,
		UserService:    users,
		AuthService:    auth,
		WebhookService: webhook,
		SessionService: sessions,
	}
}
