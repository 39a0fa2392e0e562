package random

import (
	"strings"

	"igf/internal/domain/models"
)

var (
	firstNames = []string{"Alex", "Jordan", "Taylor", "Casey", "Morgan", "Riley", "Avery", "Quinn", "Sage", "River"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	cities     = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose"}
)

const (
	// MaxUserID bounds generated user ids: [1, MaxUserID].
	MaxUserID = 10000
	minAge    = 18
	maxAge    = 67
)

// GenerateRandomUser either picks one of samples with a fresh id or synthesizes a
// user from the name, surname and city pools. pokemonIDs feeds the favourite
// Pokemon of synthesized users and may be empty.
func GenerateRandomUser(src Source, samples []models.UserRecord, pokemonIDs []int) models.UserRecord {
	if len(samples) > 0 && src.IntN(2) == 0 {
		u := Item(src, samples)
		u.ID = Between(src, 1, MaxUserID)
		if u.FavoritePokemon != nil {
			fav := *u.FavoritePokemon
			u.FavoritePokemon = &fav
		}
		return u
	}

	first := Item(src, firstNames)
	last := Item(src, lastNames)
	u := models.UserRecord{
		ID:    Between(src, 1, MaxUserID),
		Name:  first + " " + last,
		Email: strings.ToLower(first+"."+last) + "@example.com",
		Age:   Between(src, minAge, maxAge),
		City:  Item(src, cities),
	}
	if len(pokemonIDs) > 0 {
		fav := Item(src, pokemonIDs)
		u.FavoritePokemon = &fav
	}
	return u
}
