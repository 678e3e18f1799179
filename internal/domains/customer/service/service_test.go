package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/internal/domains/customer/mocks"
	"pitstop/internal/domains/customer/model"
	"pitstop/internal/domains/customer/model/dto"
	"pitstop/internal/domains/customer/service"
	"pitstop/shared/failure"
)

func TestCustomerService_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo)

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateCustomerRequest{
				Name:          "Alice",
				Address:       "12 Main St",
				PhoneNumber:   "0123456789",
				VehicleNumber: "VH123",
				VehicleMake:   "Toyota",
				VehicleModel:  "Corolla",
				VehicleYear:   2020,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "phone number too short",
			req: dto.CreateCustomerRequest{
				Name:          "Alice",
				PhoneNumber:   "12345",
				VehicleNumber: "VH123",
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "phone number with letters",
			req: dto.CreateCustomerRequest{
				Name:          "Alice",
				PhoneNumber:   "01234abcde",
				VehicleNumber: "VH123",
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing vehicle number",
			req: dto.CreateCustomerRequest{
				Name:        "Alice",
				PhoneNumber: "0123456789",
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CreateProfile(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.req.VehicleNumber, res.VehicleNumber)
			assert.Equal(t, tt.req.Name, res.Name)
		})
	}
}

func TestCustomerService_EditProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo)

	existing := model.Customer{
		ID:            "id-1",
		Name:          "Alice",
		PhoneNumber:   "0123456789",
		VehicleNumber: "VH123",
	}

	t.Run("overwrites fields and keeps identity", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByVehicle(gomock.Any(), "VH123").
			Return(existing, nil)

		var saved model.Customer
		mockRepo.EXPECT().
			Update(gomock.Any(), "VH123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, customer model.Customer) error {
				saved = customer
				return nil
			})

		req := dto.UpdateCustomerRequest{
			Name:         "Alicia",
			Address:      "34 Side St",
			PhoneNumber:  "9876543210",
			VehicleMake:  "Honda",
			VehicleModel: "Civic",
			VehicleYear:  2022,
		}

		require.NoError(t, svc.EditProfile(context.Background(), "VH123", req))
		assert.Equal(t, "id-1", saved.ID)
		assert.Equal(t, "Alicia", saved.Name)
		assert.Equal(t, "9876543210", saved.PhoneNumber)
		assert.Equal(t, "VH123", saved.VehicleNumber)
	})

	t.Run("rejects invalid phone before touching the store", func(t *testing.T) {
		err := svc.EditProfile(context.Background(), "VH123", dto.UpdateCustomerRequest{
			Name:        "Alicia",
			PhoneNumber: "123",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByVehicle(gomock.Any(), "VH999").
			Return(model.Customer{}, failure.NotFound(model.EntityName))

		err := svc.EditProfile(context.Background(), "VH999", dto.UpdateCustomerRequest{
			Name:        "Nobody",
			PhoneNumber: "0123456789",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCustomerService_FindByVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByVehicle(gomock.Any(), "VH123").
			Return(model.Customer{ID: "id-1", Name: "Alice", VehicleNumber: "VH123"}, nil)

		res, err := svc.FindByVehicle(context.Background(), "VH123")
		require.NoError(t, err)
		assert.Equal(t, "Alice", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByVehicle(gomock.Any(), "VH999").
			Return(model.Customer{}, failure.NotFound(model.EntityName))

		_, err := svc.FindByVehicle(context.Background(), "VH999")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
