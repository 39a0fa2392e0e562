package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"igf/internal/domain/models"
)

// ErrDuplicatePokemon - the catalog file defines the same Pokemon id twice.
var ErrDuplicatePokemon = errors.New("duplicate pokemon id")

// catalogJSON is the on-disk catalog. A missing or null section keeps the
// built-in data; an empty array replaces it with nothing.
type catalogJSON struct {
	Users   *[]models.UserRecord    `json:"users"`
	Pokemon *[]models.PokemonRecord `json:"pokemon"`
}

// StorageFile - catalog loaded from a JSON file once at start-up.
type StorageFile struct {
	*StorageMemory
	path string
}

// NewStorageFile reads the catalog file at path.
func NewStorageFile(path string) (*StorageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error open file %s: %w", path, err)
	}

	var cat catalogJSON
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("error parse catalog %s: %w", path, err)
	}

	users := sampleUsers
	if cat.Users != nil {
		users = *cat.Users
	}
	pokemon := pokemonList
	if cat.Pokemon != nil {
		pokemon = *cat.Pokemon
	}

	seen := make(map[int]struct{}, len(pokemon))
	for _, p := range pokemon {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePokemon, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &StorageFile{
		StorageMemory: newStorage(users, pokemon),
		path:          path,
	}, nil
}

// Path returns the file the catalog was loaded from.
func (s *StorageFile) Path() string {
	return s.path
}
