package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/repository/postgres"
)

const (
	insertUserQuery = `
						INSERT INTO users (id, name, phone, email, password_hash, role)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING id, name, phone, email, password_hash, role, created_at
`
	selectUserByIDQuery = `
						SELECT id, name, phone, email, password_hash, role, created_at FROM users
						WHERE id = $1
`
	selectUserByPhoneOrEmailQuery = `
						SELECT id, name, phone, email, password_hash, role, created_at FROM users
						WHERE phone = $1 OR (email <> '' AND email = $2)
`
)

// UserRepository implements user persistence on postgres
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts new user to database, returns models.ErrConflictData
// when phone or email is already registered
func (ur *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := ur.db.QueryRow(ctx, insertUserQuery,
		uuid.NewString(), user.Name, user.Phone, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.Name, &user.Phone, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errCode := ur.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID returns user by id. An id that is not a valid uuid cannot
// match any row and is reported as not found without touching the store.
func (ur *UserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, models.ErrDataNotFound
	}

	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByIDQuery, userID).
		Scan(&user.ID, &user.Name, &user.Phone, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if ur.db.IsNoRows(err) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByPhoneOrEmail returns user matching phone or email
func (ur *UserRepository) GetUserByPhoneOrEmail(ctx context.Context, phone, email string) (*models.User, error) {
	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByPhoneOrEmailQuery, phone, email).
		Scan(&user.ID, &user.Name, &user.Phone, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if ur.db.IsNoRows(err) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
