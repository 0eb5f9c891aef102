package service

import (
	"context"
	"errors"

	"github.com/rookgm/fooddelivery/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements user authentication
type AuthService struct {
	repo  UserRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(repo UserRepository, token TokenService) *AuthService {
	return &AuthService{
		repo:  repo,
		token: token,
	}
}

// Login authenticates user by phone or email and returns bearer token
func (as *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := as.repo.GetUserByPhoneOrEmail(ctx, login, login)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return as.token.CreateToken(user)
}
