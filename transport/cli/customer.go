package cli

import (
	"context"
)

func (c *CLI) customerMenu() {
	ctx := context.Background()

	for {
		c.printf("\n--- Customer Menu ---\n")
		c.printf("1. Create Profile\n")
		c.printf("2. Edit Profile\n")
		c.printf("3. Book Service/Repair\n")
		c.printf("4. View Booking\n")
		c.printf("5. Cancel Booking\n")
		c.printf("6. Return to Main Menu\n")

		choice, err := c.promptInt("Enter your choice: ")
		if err != nil {
			return
		}

		switch choice {
		case 1:
			_, err = c.createProfile(ctx)
		case 2:
			_, err = c.editProfile(ctx)
		case 3:
			_, err = c.createBooking(ctx)
		case 4:
			_, err = c.viewBooking(ctx)
		case 5:
			_, err = c.cancelBooking(ctx)
		case 6:
			c.printf("Returning to main menu.\n")

			return
		default:
			c.printf("Invalid choice. Try again.\n")
		}

		if err != nil {
			return
		}
	}
}
