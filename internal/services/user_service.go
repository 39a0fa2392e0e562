package services

import (
	"igf/internal/domain/models"
	"igf/internal/random"
	"igf/internal/storage"
)

// UserService produces mock users.
type UserService interface {
	Random() (models.UserRecord, error)
}

type userServ struct {
	storage storage.CatalogStorage
	rnd     random.Source
}

func NewUserService(st storage.CatalogStorage, rnd random.Source) UserService {
	return &userServ{storage: st, rnd: rnd}
}

// Random never fails; the error return keeps the handler's not-found branch typed.
func (s *userServ) Random() (models.UserRecord, error) {
	catalog := s.storage.Pokemon()
	ids := make([]int, 0, len(catalog))
	for _, p := range catalog {
		ids = append(ids, p.ID)
	}
	return random.GenerateRandomUser(s.rnd, s.storage.SampleUsers(), ids), nil
}
