package models

import "time"

// user role
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is user entity
type User struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// TokenPayload is payload of authorization token
type TokenPayload struct {
	UserID string
	Role   string
}

// IsAdmin reports whether token belongs to administrator
func (tp *TokenPayload) IsAdmin() bool {
	return tp.Role == RoleAdmin
}
