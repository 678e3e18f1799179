package cli

import (
	"context"

	"pitstop/internal/audit"
)

func (c *CLI) staffMenu() {
	ctx := context.Background()

	c.printf("\n--- Staff Login ---\n")

	username, err := c.promptLine("Enter Username: ")
	if err != nil {
		return
	}

	password, err := c.promptLine("Enter Password: ")
	if err != nil {
		return
	}

	if authErr := c.auth.Authenticate(ctx, username, password); authErr != nil {
		c.printf("Invalid credentials. Returning to main menu.\n")
		c.record(username, audit.ActionLoginFailed)

		return
	}

	c.record(username, audit.ActionLoginSucceeded)

	for {
		c.printf("\n--- Staff Menu ---\n")
		c.printf("1. Create Customer Profile\n")
		c.printf("2. Create Booking\n")
		c.printf("3. Cancel Booking\n")
		c.printf("4. View Bookings by Date\n")
		c.printf("5. Export Bookings to File\n")
		c.printf("6. Return to Main Menu\n")

		choice, err := c.promptInt("Enter your choice: ")
		if err != nil {
			return
		}

		var ok bool

		switch choice {
		case 1:
			if ok, err = c.createProfile(ctx); ok {
				c.record(username, audit.ActionCreatedProfile)
			}
		case 2:
			if ok, err = c.createBooking(ctx); ok {
				c.record(username, audit.ActionCreatedBooking)
			}
		case 3:
			if ok, err = c.cancelBooking(ctx); ok {
				c.record(username, audit.ActionCancelled)
			}
		case 4:
			if ok, err = c.viewBookingsByDate(ctx); ok {
				c.record(username, audit.ActionViewedByDate)
			}
		case 5:
			if ok, err = c.exportBookings(ctx); ok {
				c.record(username, audit.ActionExported)
			}
		case 6:
			c.printf("Returning to main menu.\n")
			c.record(username, audit.ActionLoggedOut)

			return
		default:
			c.printf("Invalid choice. Try again.\n")
		}

		if err != nil {
			return
		}
	}
}
