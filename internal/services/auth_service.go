package services

import (
	"strconv"
	"time"

	"github.com/9ssi7/nanoid"

	"igf/internal/domain/models"
	"igf/internal/random"
)

// TokenPrefix starts every mock token.
const TokenPrefix = "mock-jwt-token-"

const maxAuthUserID = 1000

// AuthService mocks authentication: any non-empty credentials are accepted.
type AuthService interface {
	Login(req models.AuthRequest) (token string, u models.AuthUser, err error)
}

type authServ struct {
	rnd random.Source
}

func NewAuthService(rnd random.Source) AuthService {
	return &authServ{rnd: rnd}
}

func (s *authServ) Login(req models.AuthRequest) (string, models.AuthUser, error) {
	if err := validate.Struct(req); err != nil {
		return "", models.AuthUser{}, invalidInput("Username and password are required")
	}

	return newToken(), models.AuthUser{
		Username: req.Username,
		ID:       random.Between(s.rnd, 1, maxAuthUserID),
	}, nil
}

func newToken() string {
	id, err := nanoid.New()
	if err != nil {
		return TokenPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return TokenPrefix + id
}
