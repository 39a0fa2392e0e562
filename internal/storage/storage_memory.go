package storage

import (
	"slices"

	"igf/internal/domain/models"
)

var sampleUsers = []models.UserRecord{
	{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Age: 28, City: "New York"},
	{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Age: 34, City: "Los Angeles"},
	{ID: 3, Name: "Carol Davis", Email: "carol@example.com", Age: 25, City: "Chicago"},
	{ID: 4, Name: "David Wilson", Email: "david@example.com", Age: 42, City: "Houston"},
	{ID: 5, Name: "Eva Brown", Email: "eva@example.com", Age: 31, City: "Phoenix"},
	{ID: 6, Name: "Frank Miller", Email: "frank@example.com", Age: 29, City: "Philadelphia"},
	{ID: 7, Name: "Grace Lee", Email: "grace@example.com", Age: 26, City: "San Antonio"},
	{ID: 8, Name: "Henry Taylor", Email: "henry@example.com", Age: 38, City: "San Diego"},
	{ID: 9, Name: "Ivy Anderson", Email: "ivy@example.com", Age: 33, City: "Dallas"},
	{ID: 10, Name: "Jack Thomas", Email: "jack@example.com", Age: 27, City: "San Jose"},
}

var pokemonList = []models.PokemonRecord{
	{ID: 1, Name: "Pikachu", Type: "Electric", Level: 25, HP: 100},
	{ID: 2, Name: "Charizard", Type: "Fire/Flying", Level: 50, HP: 200},
	{ID: 3, Name: "Blastoise", Type: "Water", Level: 45, HP: 180},
	{ID: 4, Name: "Venusaur", Type: "Grass/Poison", Level: 48, HP: 190},
	{ID: 5, Name: "Mewtwo", Type: "Psychic", Level: 70, HP: 300},
	{ID: 6, Name: "Dragonite", Type: "Dragon/Flying", Level: 55, HP: 250},
	{ID: 7, Name: "Snorlax", Type: "Normal", Level: 40, HP: 220},
	{ID: 8, Name: "Gyarados", Type: "Water/Flying", Level: 42, HP: 210},
	{ID: 9, Name: "Alakazam", Type: "Psychic", Level: 35, HP: 120},
	{ID: 10, Name: "Machamp", Type: "Fighting", Level: 38, HP: 160},
}

// StorageMemory - immutable in-memory catalog.
type StorageMemory struct {
	users   []models.UserRecord
	pokemon []models.PokemonRecord
	byID    map[int]int
}

// NewStorageMemory returns the built-in catalog.
func NewStorageMemory() *StorageMemory {
	return newStorage(sampleUsers, pokemonList)
}

func newStorage(users []models.UserRecord, pokemon []models.PokemonRecord) *StorageMemory {
	s := &StorageMemory{
		users:   slices.Clone(users),
		pokemon: slices.Clone(pokemon),
		byID:    make(map[int]int, len(pokemon)),
	}
	for i, p := range s.pokemon {
		s.byID[p.ID] = i
	}
	return s
}

// Pokemon returns a copy of the catalog in definition order.
func (s *StorageMemory) Pokemon() []models.PokemonRecord {
	return slices.Clone(s.pokemon)
}

// PokemonByID returns the entry with the given id or ErrPokemonNotFound.
func (s *StorageMemory) PokemonByID(id int) (models.PokemonRecord, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.PokemonRecord{}, ErrPokemonNotFound
	}
	return s.pokemon[i], nil
}

// SampleUsers returns a copy of the sample users.
func (s *StorageMemory) SampleUsers() []models.UserRecord {
	return slices.Clone(s.users)
}
