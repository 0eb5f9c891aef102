package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/service"
	"github.com/rookgm/fooddelivery/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sagaOrderParams() service.CreateOrderParams {
	params := validCreateParams()
	params.CustomerID = ""
	return params
}

func TestAdminOrderCreationSaga_NewCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockUserRepository(ctrl)
	ordersMock := mocks.NewMockOrderCreator(ctrl)

	usersMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "+15550123", "bob@example.com").
		Return(nil, models.ErrDataNotFound)
	// exactly one customer is provisioned, with a hashed placeholder credential
	usersMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) (*models.User, error) {
			assert.Equal(t, "Bob", user.Name)
			assert.Equal(t, models.RoleCustomer, user.Role)
			assert.NotEmpty(t, user.PasswordHash)
			user.ID = "c9"
			return user, nil
		}).Times(1)
	// the created order references the provisioned customer
	ordersMock.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.CreateOrderParams) (*models.Order, error) {
			assert.Equal(t, "c9", params.CustomerID)
			return &models.Order{ID: "o1", CustomerID: params.CustomerID}, nil
		}).Times(1)

	saga := service.NewAdminOrderCreationSaga(usersMock, ordersMock, zap.NewNop())

	order, err := saga.Run(context.Background(), service.AdminCreateOrderParams{
		Customer: service.NewCustomer{Name: "Bob", Phone: "+15550123", Email: "bob@example.com"},
		Order:    sagaOrderParams(),
	})
	require.NoError(t, err)
	assert.Equal(t, "c9", order.CustomerID)
}

func TestAdminOrderCreationSaga_ExistingCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockUserRepository(ctrl)
	ordersMock := mocks.NewMockOrderCreator(ctrl)

	// no provisioning happens when the caller names a customer
	usersMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
	ordersMock.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params service.CreateOrderParams) (*models.Order, error) {
			assert.Equal(t, "c1", params.CustomerID)
			return &models.Order{ID: "o1", CustomerID: params.CustomerID}, nil
		})

	saga := service.NewAdminOrderCreationSaga(usersMock, ordersMock, zap.NewNop())

	params := service.AdminCreateOrderParams{CustomerID: "c1", Order: sagaOrderParams()}

	_, err := saga.Run(context.Background(), params)
	require.NoError(t, err)
}

func TestAdminOrderCreationSaga_DuplicatePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockUserRepository(ctrl)
	ordersMock := mocks.NewMockOrderCreator(ctrl)

	usersMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "+15550123", "").
		Return(&models.User{ID: "c1", Phone: "+15550123"}, nil)
	// step three must not run when provisioning fails
	ordersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	saga := service.NewAdminOrderCreationSaga(usersMock, ordersMock, zap.NewNop())

	_, err := saga.Run(context.Background(), service.AdminCreateOrderParams{
		Customer: service.NewCustomer{Name: "Bob", Phone: "+15550123"},
		Order:    sagaOrderParams(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrCustomerCreationFailed))
}

func TestAdminOrderCreationSaga_CreateUserConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockUserRepository(ctrl)
	ordersMock := mocks.NewMockOrderCreator(ctrl)

	usersMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "+15550123", "").
		Return(nil, models.ErrDataNotFound)
	usersMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, models.ErrConflictData)
	ordersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	saga := service.NewAdminOrderCreationSaga(usersMock, ordersMock, zap.NewNop())

	_, err := saga.Run(context.Background(), service.AdminCreateOrderParams{
		Customer: service.NewCustomer{Name: "Bob", Phone: "+15550123"},
		Order:    sagaOrderParams(),
	})
	assert.True(t, errors.Is(err, models.ErrCustomerCreationFailed))
}

func TestAdminOrderCreationSaga_OrderFailureKeepsCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockUserRepository(ctrl)
	ordersMock := mocks.NewMockOrderCreator(ctrl)

	usersMock.EXPECT().GetUserByPhoneOrEmail(gomock.Any(), "+15550123", "").
		Return(nil, models.ErrDataNotFound)
	usersMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) (*models.User, error) {
			user.ID = "c9"
			return user, nil
		})
	ordersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, models.ErrPricingMismatch)

	saga := service.NewAdminOrderCreationSaga(usersMock, ordersMock, zap.NewNop())

	// the saga surfaces the order failure, the provisioned customer is
	// not rolled back
	_, err := saga.Run(context.Background(), service.AdminCreateOrderParams{
		Customer: service.NewCustomer{Name: "Bob", Phone: "+15550123"},
		Order:    sagaOrderParams(),
	})
	assert.True(t, errors.Is(err, models.ErrPricingMismatch))
}

func TestAdminOrderCreationSaga_MissingCustomerFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockUserRepository(ctrl)
	ordersMock := mocks.NewMockOrderCreator(ctrl)

	saga := service.NewAdminOrderCreationSaga(usersMock, ordersMock, zap.NewNop())

	_, err := saga.Run(context.Background(), service.AdminCreateOrderParams{
		Customer: service.NewCustomer{Name: "", Phone: "+15550123"},
		Order:    sagaOrderParams(),
	})
	assert.True(t, errors.Is(err, models.ErrValidation))
}
