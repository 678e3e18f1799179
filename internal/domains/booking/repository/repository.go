package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"iter"
	"slices"

	"pitstop/internal/domains/booking/model"
	"pitstop/shared/failure"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]model.Booking, error)
	FirstByVehicle(ctx context.Context, vehicleNumber string) (model.Booking, error)
	RemoveByReference(ctx context.Context, referenceNumber string) error
	SlotTaken(ctx context.Context, date, time, location string) (bool, error)
	ByDateAndLocation(ctx context.Context, date, location string) iter.Seq[model.Booking]
}

// repositoryImpl keeps bookings in insertion order.
type repositoryImpl struct {
	bookings []model.Booking
}

func New() Booking {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Insert(_ context.Context, booking model.Booking) error {
	r.bookings = append(r.bookings, booking)

	return nil
}

func (r *repositoryImpl) Count(_ context.Context) (int, error) {
	return len(r.bookings), nil
}

func (r *repositoryImpl) All(_ context.Context) ([]model.Booking, error) {
	return slices.Clone(r.bookings), nil
}

func (r *repositoryImpl) FirstByVehicle(_ context.Context, vehicleNumber string) (model.Booking, error) {
	for _, booking := range r.bookings {
		if booking.Customer.VehicleNumber == vehicleNumber {
			return booking, nil
		}
	}

	return model.Booking{}, failure.NotFound(model.EntityName) //nolint:wrapcheck
}

func (r *repositoryImpl) RemoveByReference(_ context.Context, referenceNumber string) error {
	for i, booking := range r.bookings {
		if booking.ReferenceNumber == referenceNumber {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)

			return nil
		}
	}

	return failure.NotFound(model.EntityName) //nolint:wrapcheck
}

func (r *repositoryImpl) SlotTaken(_ context.Context, date, time, location string) (bool, error) {
	for _, booking := range r.bookings {
		if booking.Date == date && booking.Time == time && booking.Location == location {
			return true, nil
		}
	}

	return false, nil
}

// ByDateAndLocation returns a lazy sequence over the live collection, in
// insertion order. Each range walks the collection again, so the sequence is
// restartable and always reflects the current state.
func (r *repositoryImpl) ByDateAndLocation(_ context.Context, date, location string) iter.Seq[model.Booking] {
	return func(yield func(model.Booking) bool) {
		for _, booking := range r.bookings {
			if booking.Date == date && booking.Location == location {
				if !yield(booking) {
					return
				}
			}
		}
	}
}
