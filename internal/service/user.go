package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rookgm/fooddelivery/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is interface for interacting with user-related data
type UserRepository interface {
	// CreateUser inserts new user to database
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByID returns user by id
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	// GetUserByPhoneOrEmail returns user matching phone or email
	GetUserByPhoneOrEmail(ctx context.Context, phone, email string) (*models.User, error)
}

// UserService implements user registration and lookup
type UserService struct {
	repo UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates new customer account with hashed password
func (us *UserService) Register(ctx context.Context, name, phone, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", models.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return us.repo.CreateUser(ctx, &models.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	})
}

// GetByID returns user by id
func (us *UserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return us.repo.GetUserByID(ctx, userID)
}
