package dto

import (
	"fmt"

	"github.com/google/uuid"

	"pitstop/internal/domains/booking/model"
	customerModel "pitstop/internal/domains/customer/model"
	customerDto "pitstop/internal/domains/customer/model/dto"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"
)

// CreateBookingRequest carries the already-collected booking fields. Time and
// LocationChoice are only meaningful for Service bookings; LocationChoice is
// the one-based index into the configured location list.
type CreateBookingRequest struct {
	Type           string `json:"type"            validate:"required"`
	VehicleNumber  string `json:"vehicle_number"  validate:"required"`
	Date           string `json:"date"            validate:"required,bookingdate"`
	Time           string `json:"time"            validate:"omitempty,slottime"`
	LocationChoice int    `json:"location_choice" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(referenceNumber, location string, customer customerModel.Customer) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		ReferenceNumber: referenceNumber,
		Date:            c.Date,
		Time:            c.Time,
		Location:        location,
		Type:            c.Type,
		Customer:        customer,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type BookingResponse struct {
	ID              string                       `json:"id"`
	ReferenceNumber string                       `json:"reference_number"`
	Date            string                       `json:"date"`
	Time            string                       `json:"time"`
	Location        string                       `json:"location"`
	Type            string                       `json:"type"`
	Customer        customerDto.CustomerResponse `json:"customer"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ReferenceNumber = model.ReferenceNumber
	r.Date = model.Date
	r.Time = model.Time
	r.Location = model.Location
	r.Type = model.Type
	r.Customer.FromModel(model.Customer)
}

// FormatText renders one booking block: booking fields first, then the nested
// customer block, one field per line.
func (r *BookingResponse) FormatText() string {
	return fmt.Sprintf("Reference Number: %s\nDate: %s\nTime: %s\nLocation: %s\n%s",
		r.ReferenceNumber, r.Date, r.Time, r.Location, r.Customer.FormatText())
}
