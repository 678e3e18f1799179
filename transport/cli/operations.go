package cli

import (
	"context"
	"errors"
	"net/http"

	bookingDto "pitstop/internal/domains/booking/model/dto"
	customerDto "pitstop/internal/domains/customer/model/dto"
	"pitstop/shared/constant"
	"pitstop/shared/failure"
)

// Each operation returns ok=true when the underlying service call succeeded.
// A non-nil error means input ended and the surrounding menu should unwind.

func (c *CLI) createProfile(ctx context.Context) (bool, error) {
	c.printf("Enter the following details:\n")

	name, err := c.promptLine("Name: ")
	if err != nil {
		return false, err
	}

	address, err := c.promptLine("Address: ")
	if err != nil {
		return false, err
	}

	phone, err := c.promptValid("Phone Number (10 digits): ", "phone10",
		"Invalid phone number. Please enter a 10-digit number.")
	if err != nil {
		return false, err
	}

	vehicleNumber, err := c.promptLine("Vehicle Number: ")
	if err != nil {
		return false, err
	}

	vehicleMake, err := c.promptLine("Vehicle Make: ")
	if err != nil {
		return false, err
	}

	vehicleModel, err := c.promptLine("Vehicle Model: ")
	if err != nil {
		return false, err
	}

	year, err := c.promptInt("Vehicle Manufacturing Year: ")
	if err != nil {
		return false, err
	}

	req := customerDto.CreateCustomerRequest{
		Name:          name,
		Address:       address,
		PhoneNumber:   phone,
		VehicleNumber: vehicleNumber,
		VehicleMake:   vehicleMake,
		VehicleModel:  vehicleModel,
		VehicleYear:   year,
	}

	if _, svcErr := c.customers.CreateProfile(ctx, req); svcErr != nil {
		c.printf("Could not create profile: %s\n", svcErr.Error())

		return false, nil
	}

	c.printf("Customer profile created successfully.\n")

	return true, nil
}

func (c *CLI) editProfile(ctx context.Context) (bool, error) {
	vehicleNumber, err := c.promptLine("Enter your vehicle number: ")
	if err != nil {
		return false, err
	}

	if _, svcErr := c.customers.FindByVehicle(ctx, vehicleNumber); svcErr != nil {
		c.printf("Customer profile not found. Please create a profile first.\n")

		return false, nil
	}

	c.printf("Enter new details:\n")

	name, err := c.promptLine("Name: ")
	if err != nil {
		return false, err
	}

	address, err := c.promptLine("Address: ")
	if err != nil {
		return false, err
	}

	phone, err := c.promptValid("Phone Number (10 digits): ", "phone10",
		"Invalid phone number. Please enter a 10-digit number.")
	if err != nil {
		return false, err
	}

	vehicleMake, err := c.promptLine("Vehicle Make: ")
	if err != nil {
		return false, err
	}

	vehicleModel, err := c.promptLine("Vehicle Model: ")
	if err != nil {
		return false, err
	}

	year, err := c.promptInt("Vehicle Manufacturing Year: ")
	if err != nil {
		return false, err
	}

	req := customerDto.UpdateCustomerRequest{
		Name:         name,
		Address:      address,
		PhoneNumber:  phone,
		VehicleMake:  vehicleMake,
		VehicleModel: vehicleModel,
		VehicleYear:  year,
	}

	if svcErr := c.customers.EditProfile(ctx, vehicleNumber, req); svcErr != nil {
		c.printf("Could not update profile: %s\n", svcErr.Error())

		return false, nil
	}

	c.printf("Customer profile updated successfully.\n")

	return true, nil
}

func (c *CLI) createBooking(ctx context.Context) (bool, error) {
	vehicleNumber, err := c.promptLine("Enter your vehicle number: ")
	if err != nil {
		return false, err
	}

	if _, svcErr := c.customers.FindByVehicle(ctx, vehicleNumber); svcErr != nil {
		c.printf("Customer profile not found. Please create a profile first.\n")

		return false, nil
	}

	date, err := c.promptValid("Enter booking date (YYYY-MM-DD): ", "bookingdate",
		"Invalid date format or date. Please use YYYY-MM-DD format and ensure the date is valid.")
	if err != nil {
		return false, err
	}

	slot, err := c.promptValid("Enter time slot (09:00 - 14:00): ", "slottime",
		"Invalid time format or time. Please use HH:MM format and ensure the time is between 09:00 and 14:00.")
	if err != nil {
		return false, err
	}

	locations := c.bookings.Locations()

	c.printf("Available locations:\n")

	for i, location := range locations {
		c.printf("%d. %s\n", i+1, location)
	}

	choice, err := c.promptInt("Select location (1-5): ")
	if err != nil {
		return false, err
	}

	req := bookingDto.CreateBookingRequest{
		Type:           constant.BookingTypeService,
		VehicleNumber:  vehicleNumber,
		Date:           date,
		Time:           slot,
		LocationChoice: choice,
	}

	res, svcErr := c.bookings.Create(ctx, req)
	if svcErr != nil {
		switch {
		case errors.Is(svcErr, failure.InvalidLocation):
			c.printf("Invalid location choice. Booking cancelled.\n")
		case errors.Is(svcErr, failure.SlotTaken):
			c.printf("Selected time is already filled. Select another time.\n")
		case failure.GetCode(svcErr) == http.StatusNotFound:
			c.printf("Customer profile not found. Please create a profile first.\n")
		default:
			c.printf("Could not create booking: %s\n", svcErr.Error())
		}

		return false, nil
	}

	c.printf("Booking created successfully.\n")
	c.printf("%s\n", res.FormatText())

	return true, nil
}

func (c *CLI) viewBooking(ctx context.Context) (bool, error) {
	vehicleNumber, err := c.promptLine("Enter your vehicle number to view booking: ")
	if err != nil {
		return false, err
	}

	res, svcErr := c.bookings.View(ctx, vehicleNumber)
	if svcErr != nil {
		c.printf("No booking found for the given vehicle number.\n")

		return false, nil
	}

	c.printf("%s\n", res.FormatText())

	return true, nil
}

func (c *CLI) cancelBooking(ctx context.Context) (bool, error) {
	reference, err := c.promptLine("Enter the reference number of the booking to cancel: ")
	if err != nil {
		return false, err
	}

	if svcErr := c.bookings.Cancel(ctx, reference); svcErr != nil {
		c.printf("Booking not found.\n")

		return false, nil
	}

	c.printf("Booking canceled successfully.\n")

	return true, nil
}

func (c *CLI) viewBookingsByDate(ctx context.Context) (bool, error) {
	date, err := c.promptLine("Enter the date to view bookings (YYYY-MM-DD): ")
	if err != nil {
		return false, err
	}

	locations := c.bookings.Locations()

	c.printf("Available locations:\n")

	for i, location := range locations {
		c.printf("%d. %s\n", i+1, location)
	}

	choice, err := c.promptInt("Select location (1-5): ")
	if err != nil {
		return false, err
	}

	bookings, svcErr := c.bookings.ViewByDateAndLocation(ctx, date, choice)
	if svcErr != nil {
		c.printf("Invalid location choice.\n")

		return false, nil
	}

	c.printf("Bookings for %s at %s:\n", date, locations[choice-1])

	for res := range bookings {
		c.printf("%s\n\n", res.FormatText())
	}

	return true, nil
}

func (c *CLI) exportBookings(ctx context.Context) (bool, error) {
	path := c.cfg.Booking.ExportPath

	if svcErr := c.bookings.ExportToFile(ctx, path); svcErr != nil {
		c.printf("Error opening file for writing.\n")

		return false, nil
	}

	c.printf("Bookings exported successfully to %s.\n", path)

	return true, nil
}
