package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitstop/config"
	"pitstop/internal/domains/booking/mocks"
	"pitstop/internal/domains/booking/model"
	"pitstop/internal/domains/booking/model/dto"
	"pitstop/internal/domains/booking/service"
	customerMocks "pitstop/internal/domains/customer/mocks"
	customerModel "pitstop/internal/domains/customer/model"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.Locations = []string{"Tokyo", "Osaka", "Kyoto", "Nara", "Chiba"}

	return cfg
}

func TestBookingService_Create(t *testing.T) {
	customer := customerModel.Customer{
		ID:            "cust-1",
		Name:          "Alice",
		PhoneNumber:   "0123456789",
		VehicleNumber: "VH123",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo *mocks.MockBooking, customers *customerMocks.MockCustomer)
		wantErr   error
		wantCode  int
		wantRef   string
		wantLoc   string
	}{
		{
			name: "customer not found",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH999",
				Date:           "2025-06-01",
				Time:           "09:00",
				LocationChoice: 1,
			},
			setupMock: func(_ *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH999").
					Return(customerModel.Customer{}, failure.NotFound(customerModel.EntityName))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "invalid date",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH123",
				Date:           "2024-06-01",
				Time:           "09:00",
				LocationChoice: 1,
			},
			setupMock: func(_ *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
			},
			wantErr: failure.InvalidDate,
		},
		{
			name: "invalid time for service booking",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH123",
				Date:           "2025-06-01",
				Time:           "15:00",
				LocationChoice: 1,
			},
			setupMock: func(_ *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
			},
			wantErr: failure.InvalidTime,
		},
		{
			name: "location choice below range",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH123",
				Date:           "2025-06-01",
				Time:           "09:00",
				LocationChoice: 0,
			},
			setupMock: func(_ *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
			},
			wantErr: failure.InvalidLocation,
		},
		{
			name: "location choice above range",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH123",
				Date:           "2025-06-01",
				Time:           "09:00",
				LocationChoice: 6,
			},
			setupMock: func(_ *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
			},
			wantErr: failure.InvalidLocation,
		},
		{
			name: "slot conflict",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH123",
				Date:           "2025-06-01",
				Time:           "09:00",
				LocationChoice: 1,
			},
			setupMock: func(repo *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
				repo.EXPECT().
					SlotTaken(gomock.Any(), "2025-06-01", "09:00", "Tokyo").
					Return(true, nil)
			},
			wantErr: failure.SlotTaken,
		},
		{
			name: "successful service booking",
			req: dto.CreateBookingRequest{
				Type:           constant.BookingTypeService,
				VehicleNumber:  "VH123",
				Date:           "2025-06-01",
				Time:           "09:00",
				LocationChoice: 3,
			},
			setupMock: func(repo *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
				repo.EXPECT().
					SlotTaken(gomock.Any(), "2025-06-01", "09:00", "Kyoto").
					Return(false, nil)
				repo.EXPECT().
					Count(gomock.Any()).
					Return(2, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRef: "REF3",
			wantLoc: "Kyoto",
		},
		{
			name: "repair booking skips slot checks",
			req: dto.CreateBookingRequest{
				Type:          constant.BookingTypeRepair,
				VehicleNumber: "VH123",
				Date:          "2025-06-01",
			},
			setupMock: func(repo *mocks.MockBooking, customers *customerMocks.MockCustomer) {
				customers.EXPECT().
					FindByVehicle(gomock.Any(), "VH123").
					Return(customer, nil)
				repo.EXPECT().
					Count(gomock.Any()).
					Return(0, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRef: "REF1",
			wantLoc: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockBooking(ctrl)
			mockCustomers := customerMocks.NewMockCustomer(ctrl)
			svc := service.New(mockRepo, mockCustomers, testConfig())

			tt.setupMock(mockRepo, mockCustomers)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.wantRef, res.ReferenceNumber)
			assert.Equal(t, tt.wantLoc, res.Location)
			assert.Equal(t, "Alice", res.Customer.Name)
			assert.Equal(t, "VH123", res.Customer.VehicleNumber)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBooking(ctrl)
	mockCustomers := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, mockCustomers, testConfig())

	mockRepo.EXPECT().
		RemoveByReference(gomock.Any(), "REF1").
		Return(nil)
	require.NoError(t, svc.Cancel(context.Background(), "REF1"))

	mockRepo.EXPECT().
		RemoveByReference(gomock.Any(), "REF9").
		Return(failure.NotFound(model.EntityName))
	err := svc.Cancel(context.Background(), "REF9")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_ViewByDateAndLocation_InvalidChoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBooking(ctrl)
	mockCustomers := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, mockCustomers, testConfig())

	for _, choice := range []int{0, -1, 6} {
		_, err := svc.ViewByDateAndLocation(context.Background(), "2025-06-01", choice)
		require.ErrorIs(t, err, failure.InvalidLocation)
	}
}
