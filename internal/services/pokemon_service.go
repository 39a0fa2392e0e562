// Package services contains the request-independent logic behind the API.
package services

import (
	"errors"
	"fmt"
	"strconv"

	"igf/internal/domain/models"
	"igf/internal/random"
	"igf/internal/storage"
)

// PokemonService serves the Pokemon catalog.
type PokemonService interface {
	// List returns the whole catalog in definition order.
	List() ([]models.PokemonRecord, error)
	// Random returns a uniformly drawn catalog entry.
	Random() (models.PokemonRecord, error)
	// ByID parses rawID and looks the entry up.
	ByID(rawID string) (models.PokemonRecord, error)
}

type pokemonServ struct {
	storage storage.CatalogStorage
	rnd     random.Source
}

func NewPokemonService(st storage.CatalogStorage, rnd random.Source) PokemonService {
	return &pokemonServ{storage: st, rnd: rnd}
}

func (s *pokemonServ) List() ([]models.PokemonRecord, error) {
	list := s.storage.Pokemon()
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrNotFound)
	}
	return list, nil
}

func (s *pokemonServ) Random() (models.PokemonRecord, error) {
	list := s.storage.Pokemon()
	if len(list) == 0 {
		return models.PokemonRecord{}, fmt.Errorf("%w: catalog is empty", ErrNotFound)
	}
	return random.Item(s.rnd, list), nil
}

func (s *pokemonServ) ByID(rawID string) (models.PokemonRecord, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return models.PokemonRecord{}, invalidInput("Invalid Pokemon ID")
	}

	p, err := s.storage.PokemonByID(id)
	if errors.Is(err, storage.ErrPokemonNotFound) {
		return models.PokemonRecord{}, fmt.Errorf("%w: pokemon %d", ErrNotFound, id)
	}
	if err != nil {
		return models.PokemonRecord{}, err
	}
	return p, nil
}
