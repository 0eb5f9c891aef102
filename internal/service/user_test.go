package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/service"
	"github.com/rookgm/fooddelivery/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockUserRepository(ctrl)
	repoMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			created := *user
			created.ID = "c1"
			return &created, nil
		})

	svc := service.NewUserService(repoMock)

	user, err := svc.Register(context.Background(), " John Doe ", "+15550100", "", "secret")
	require.NoError(t, err)

	assert.Equal(t, "c1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		phone    string
		password string
	}{
		{
			name:     "empty_name",
			phone:    "+15550100",
			password: "secret",
		},
		{
			name:     "empty_phone",
			userName: "John Doe",
			password: "secret",
		},
		{
			name:     "empty_password",
			userName: "John Doe",
			phone:    "+15550100",
		},
		{
			name:     "blank_name",
			userName: "   ",
			phone:    "+15550100",
			password: "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockUserRepository(ctrl)
			repoMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

			svc := service.NewUserService(repoMock)

			_, err := svc.Register(context.Background(), tt.userName, tt.phone, "", tt.password)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           "c1",
		Phone:        "+15550100",
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}

	tests := []struct {
		name      string
		login     string
		password  string
		setup     func(t *testing.T, ctrl *gomock.Controller) (*mocks.MockUserRepository, *mocks.MockTokenService)
		wantToken string
		wantErr   error
	}{
		{
			name:     "valid_credentials",
			login:    "+15550100",
			password: "secret",
			setup: func(t *testing.T, ctrl *gomock.Controller) (*mocks.MockUserRepository, *mocks.MockTokenService) {
				repoMock := mocks.NewMockUserRepository(ctrl)
				repoMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "+15550100", "+15550100").
					Return(user, nil)

				tokenMock := mocks.NewMockTokenService(ctrl)
				tokenMock.EXPECT().CreateToken(user).Return("token123", nil)
				return repoMock, tokenMock
			},
			wantToken: "token123",
		},
		{
			name:     "wrong_password",
			login:    "+15550100",
			password: "wrong",
			setup: func(t *testing.T, ctrl *gomock.Controller) (*mocks.MockUserRepository, *mocks.MockTokenService) {
				repoMock := mocks.NewMockUserRepository(ctrl)
				repoMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "+15550100", "+15550100").
					Return(user, nil)

				tokenMock := mocks.NewMockTokenService(ctrl)
				tokenMock.EXPECT().CreateToken(gomock.Any()).Times(0)
				return repoMock, tokenMock
			},
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:     "unknown_login",
			login:    "nobody@example.com",
			password: "secret",
			setup: func(t *testing.T, ctrl *gomock.Controller) (*mocks.MockUserRepository, *mocks.MockTokenService) {
				repoMock := mocks.NewMockUserRepository(ctrl)
				repoMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "nobody@example.com", "nobody@example.com").
					Return(nil, models.ErrDataNotFound)

				tokenMock := mocks.NewMockTokenService(ctrl)
				tokenMock.EXPECT().CreateToken(gomock.Any()).Times(0)
				return repoMock, tokenMock
			},
			wantErr: models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock, tokenMock := tt.setup(t, ctrl)
			svc := service.NewAuthService(repoMock, tokenMock)

			token, err := svc.Login(context.Background(), tt.login, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
