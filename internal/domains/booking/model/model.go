package model

import (
	customerModel "pitstop/internal/domains/customer/model"
	"pitstop/shared/model"
)

const (
	EntityName = "booking"
)

// Booking is immutable once created. Customer is a value snapshot taken at
// booking time; later profile edits do not reach it.
type Booking struct {
	ID              string                 `json:"id"`
	ReferenceNumber string                 `json:"reference_number"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	Location        string                 `json:"location"`
	Type            string                 `json:"type"`
	Customer        customerModel.Customer `json:"customer"`
	model.Metadata
}
