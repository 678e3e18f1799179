package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pitstop/internal/domains/customer/model"
	"pitstop/shared/failure"
)

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	FindByVehicle(ctx context.Context, vehicleNumber string) (model.Customer, error)
	Update(ctx context.Context, vehicleNumber string, model model.Customer) error
}

// repositoryImpl keeps customers in insertion order. Vehicle numbers are not
// deduplicated on insert; lookups surface the first match.
type repositoryImpl struct {
	customers []model.Customer
}

func New() Customer {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Insert(_ context.Context, customer model.Customer) error {
	r.customers = append(r.customers, customer)

	return nil
}

func (r *repositoryImpl) FindByVehicle(_ context.Context, vehicleNumber string) (model.Customer, error) {
	for _, customer := range r.customers {
		if customer.VehicleNumber == vehicleNumber {
			return customer, nil
		}
	}

	return model.Customer{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(_ context.Context, vehicleNumber string, customer model.Customer) error {
	for i := range r.customers {
		if r.customers[i].VehicleNumber == vehicleNumber {
			r.customers[i] = customer

			return nil
		}
	}

	return failure.NotFound(model.EntityName) //nolint:wrapcheck
}
