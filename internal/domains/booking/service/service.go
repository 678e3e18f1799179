package service

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/rs/zerolog/log"

	"pitstop/config"
	"pitstop/internal/domains/booking/model/dto"
	"pitstop/internal/domains/booking/repository"
	customerRepo "pitstop/internal/domains/customer/repository"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
	"pitstop/shared/validator"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	View(ctx context.Context, vehicleNumber string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, referenceNumber string) error
	ViewByDateAndLocation(ctx context.Context, date string, locationChoice int) (iter.Seq[dto.BookingResponse], error)
	Export(ctx context.Context, w io.Writer) error
	ExportToFile(ctx context.Context, path string) error
	Locations() []string
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	cfg          *config.Config
}

func New(repo repository.Booking, customerRepo customerRepo.Customer, cfg *config.Config) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		cfg:          cfg,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	customer, err := s.customerRepo.FindByVehicle(ctx, req.VehicleNumber)
	if err != nil {
		return res, err
	}

	if !validator.IsValidDate(req.Date) {
		return res, failure.InvalidDate
	}

	location := constant.Empty

	if req.Type == constant.BookingTypeService {
		location, err = s.serviceSlotLocation(ctx, req)
		if err != nil {
			return res, err
		}
	}

	booking := req.ToModel(s.nextReferenceNumber(ctx), location, customer)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Debug().
		Str("reference", booking.ReferenceNumber).
		Str("vehicle", customer.VehicleNumber).
		Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

// serviceSlotLocation validates the slot fields required for Service bookings
// and resolves the chosen location, enforcing one active booking per
// (date, time, location) slot.
func (s *serviceImpl) serviceSlotLocation(ctx context.Context, req dto.CreateBookingRequest) (string, error) {
	if !validator.IsValidTime(req.Time) {
		return constant.Empty, failure.InvalidTime
	}

	locations := s.cfg.Booking.Locations
	if req.LocationChoice < 1 || req.LocationChoice > len(locations) {
		return constant.Empty, failure.InvalidLocation
	}

	location := locations[req.LocationChoice-1]

	taken, err := s.repo.SlotTaken(ctx, req.Date, req.Time, location)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if taken {
		return constant.Empty, failure.SlotTaken
	}

	return location, nil
}

// nextReferenceNumber derives the reference from the live booking count, as
// the booking desk always has. After cancellations the count can fall back,
// so a new booking may be handed a reference identical to a cancelled one.
func (s *serviceImpl) nextReferenceNumber(ctx context.Context) string {
	count, err := s.repo.Count(ctx)
	if err != nil {
		count = 0
	}

	return "REF" + strconv.Itoa(count+1)
}

func (s *serviceImpl) View(ctx context.Context, vehicleNumber string) (res dto.BookingResponse, err error) {
	// Only the first booking for the vehicle is surfaced.
	booking, err := s.repo.FirstByVehicle(ctx, vehicleNumber)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, referenceNumber string) error {
	if err := s.repo.RemoveByReference(ctx, referenceNumber); err != nil {
		return err
	}

	log.Debug().Str("reference", referenceNumber).Msg("booking cancelled")

	return nil
}

func (s *serviceImpl) ViewByDateAndLocation(ctx context.Context, date string, locationChoice int) (iter.Seq[dto.BookingResponse], error) {
	locations := s.cfg.Booking.Locations
	if locationChoice < 1 || locationChoice > len(locations) {
		return nil, failure.InvalidLocation
	}

	location := locations[locationChoice-1]
	bookings := s.repo.ByDateAndLocation(ctx, date, location)

	return func(yield func(dto.BookingResponse) bool) {
		for booking := range bookings {
			var res dto.BookingResponse
			res.FromModel(booking)

			if !yield(res) {
				return
			}
		}
	}, nil
}

func (s *serviceImpl) Locations() []string {
	return s.cfg.Booking.Locations
}
