package dto

import (
	"fmt"

	"github.com/google/uuid"

	"pitstop/internal/domains/customer/model"
	gModel "pitstop/shared/model"
	"pitstop/shared/timezone"
)

// CreateCustomerRequest carries the already-collected profile fields. Only the
// phone number is validated; the remaining fields are free text.
type CreateCustomerRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"   validate:"required,phone10"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleYear   int    `json:"vehicle_year"`
}

func (c *CreateCustomerRequest) ToModel() model.Customer {
	return model.Customer{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Address:       c.Address,
		PhoneNumber:   c.PhoneNumber,
		VehicleNumber: c.VehicleNumber,
		VehicleMake:   c.VehicleMake,
		VehicleModel:  c.VehicleModel,
		VehicleYear:   c.VehicleYear,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdateCustomerRequest overwrites every mutable profile field. The vehicle
// number is the lookup key and is not editable.
type UpdateCustomerRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number" validate:"required,phone10"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
}

func (u *UpdateCustomerRequest) ApplyTo(customer *model.Customer) {
	customer.Name = u.Name
	customer.Address = u.Address
	customer.PhoneNumber = u.PhoneNumber
	customer.VehicleMake = u.VehicleMake
	customer.VehicleModel = u.VehicleModel
	customer.VehicleYear = u.VehicleYear
	customer.ModifiedAt = timezone.Now()
}

type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleMake   string `json:"vehicle_make"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleYear   int    `json:"vehicle_year"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.PhoneNumber = model.PhoneNumber
	r.VehicleNumber = model.VehicleNumber
	r.VehicleMake = model.VehicleMake
	r.VehicleModel = model.VehicleModel
	r.VehicleYear = model.VehicleYear
}

// FormatText renders the customer block used in booking displays and the
// export file.
func (r *CustomerResponse) FormatText() string {
	return fmt.Sprintf("Name: %s\nVehicle Number: %s", r.Name, r.VehicleNumber)
}
