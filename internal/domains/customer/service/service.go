package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pitstop/internal/domains/customer/model/dto"
	"pitstop/internal/domains/customer/repository"
	"pitstop/shared/validator"
)

type Customer interface {
	CreateProfile(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	FindByVehicle(ctx context.Context, vehicleNumber string) (dto.CustomerResponse, error)
	EditProfile(ctx context.Context, vehicleNumber string, req dto.UpdateCustomerRequest) error
}

type serviceImpl struct {
	repo repository.Customer
}

func New(repo repository.Customer) Customer {
	return &serviceImpl{
		repo: repo,
	}
}

func (s *serviceImpl) CreateProfile(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	customer := req.ToModel()

	if err = s.repo.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer profile")

		return res, fmt.Errorf("failed to create customer profile: %w", err)
	}

	log.Debug().Str("vehicle", customer.VehicleNumber).Msg("customer profile created")

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) FindByVehicle(ctx context.Context, vehicleNumber string) (res dto.CustomerResponse, err error) {
	customer, err := s.repo.FindByVehicle(ctx, vehicleNumber)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) EditProfile(ctx context.Context, vehicleNumber string, req dto.UpdateCustomerRequest) error {
	if err := validator.ValidateStruct(&req); err != nil {
		return err
	}

	customer, err := s.repo.FindByVehicle(ctx, vehicleNumber)
	if err != nil {
		return err
	}

	// Identity and creation metadata survive the overwrite. Bookings hold a
	// snapshot of the customer taken at booking time and are not rewritten.
	req.ApplyTo(&customer)

	if err := s.repo.Update(ctx, vehicleNumber, customer); err != nil {
		log.Error().Err(err).Msg("failed to update customer profile")

		return fmt.Errorf("failed to update customer profile: %w", err)
	}

	return nil
}
