package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/service"
	"go.uber.org/zap"
)

// UserService is interface for user registration
type UserService interface {
	// Register creates new customer account
	Register(ctx context.Context, name, phone, email, password string) (*models.User, error)
}

// UserHandler represents HTTP handler for user-related requests
type UserHandler struct {
	svc    UserService
	token  service.TokenService
	logger *zap.Logger
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(svc UserService, token service.TokenService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		token:  token,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// RegisterUser registers new customer and returns bearer token
// 200 - user registered
// 400 - invalid request body or failed validation
// 409 - phone or email already registered
// 500 - internal server error
func (uh *UserHandler) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		user, err := uh.svc.Register(r.Context(), req.Name, req.Phone, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrValidation):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, models.ErrConflictData):
				http.Error(w, "phone or email already registered", http.StatusConflict)
			default:
				uh.logger.Error("register user failed", zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		token, err := uh.token.CreateToken(user)
		if err != nil {
			uh.logger.Error("create token failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}
