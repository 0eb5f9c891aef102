package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rookgm/fooddelivery/internal/models"
	"go.uber.org/zap"
)

// AuthService is interface for user authentication
type AuthService interface {
	// Login authenticates user and returns bearer token
	Login(ctx context.Context, login, password string) (string, error)
}

// AuthHandler represents HTTP handler for authentication requests
type AuthHandler struct {
	svc    AuthService
	logger *zap.Logger
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginUser authenticates user by phone or email
// 200 - user authenticated
// 400 - invalid request body
// 401 - invalid login or password
// 500 - internal server error
func (ah *AuthHandler) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := ah.svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				http.Error(w, "invalid login or password", http.StatusUnauthorized)
				return
			}
			ah.logger.Error("login user failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}
