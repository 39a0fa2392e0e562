package storage

import (
	"errors"

	"igf/internal/domain/models"
)

// ErrPokemonNotFound - no catalog entry has the requested id.
var ErrPokemonNotFound = errors.New("pokemon not found")

// CatalogStorage is the read-only fixture store.
type CatalogStorage interface {
	// Pokemon returns the catalog in definition order.
	Pokemon() []models.PokemonRecord
	// PokemonByID looks up a catalog entry by exact id.
	PokemonByID(id int) (models.PokemonRecord, error)
	// SampleUsers returns the fixed sample users in definition order.
	SampleUsers() []models.UserRecord
}
