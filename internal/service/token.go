package service

import "github.com/rookgm/fooddelivery/internal/models"

// TokenService creates and verifies bearer tokens
type TokenService interface {
	CreateToken(user *models.User) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}
