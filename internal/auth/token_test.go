package auth

import (
	"testing"

	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthToken_CreateVerify(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	token, err := at.CreateToken(&models.User{ID: "c1", Role: models.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "c1", payload.UserID)
	assert.Equal(t, models.RoleAdmin, payload.Role)
	assert.True(t, payload.IsAdmin())
}

func TestAuthToken_VerifyInvalid(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage_token",
			token: "not.a.token",
		},
		{
			name:  "empty_token",
			token: "",
		},
		{
			name: "wrong_key",
			token: func() string {
				other := NewAuthToken([]byte("fedcba9876543210"))
				token, err := other.CreateToken(&models.User{ID: "c1", Role: models.RoleCustomer})
				require.NoError(t, err)
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := at.VerifyToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
