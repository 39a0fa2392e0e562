package services

import (
	"testing"

	"igf/internal/random"
	"igf/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Random(t *testing.T) {
	s := NewUserService(storage.NewStorageMemory(), random.NewSeeded(11))

	for i := 0; i < 100; i++ {
		u, err := s.Random()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u.ID, 1)
		assert.LessOrEqual(t, u.ID, random.MaxUserID)
		assert.NotEmpty(t, u.Name)
		assert.Contains(t, u.Email, "@example.com")
		if u.FavoritePokemon != nil {
			assert.GreaterOrEqual(t, *u.FavoritePokemon, 1)
			assert.LessOrEqual(t, *u.FavoritePokemon, 10)
		}
	}
}
