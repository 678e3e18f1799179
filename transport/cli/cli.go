// Package cli drives the booking desk through numbered console menus. It
// collects and re-prompts raw input, then invokes the domain services with
// typed arguments.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"pitstop/config"
	"pitstop/internal/audit"
	authService "pitstop/internal/domains/auth/service"
	bookingService "pitstop/internal/domains/booking/service"
	customerService "pitstop/internal/domains/customer/service"
)

type CLI struct {
	cfg       *config.Config
	auth      authService.Auth
	customers customerService.Customer
	bookings  bookingService.Booking
	recorder  audit.Recorder
	in        *bufio.Scanner
	out       io.Writer
}

func New(cfg *config.Config, auth authService.Auth, customers customerService.Customer, bookings bookingService.Booking, recorder audit.Recorder) *CLI {
	return NewWithIO(os.Stdin, os.Stdout, cfg, auth, customers, bookings, recorder)
}

func NewWithIO(in io.Reader, out io.Writer, cfg *config.Config, auth authService.Auth, customers customerService.Customer, bookings bookingService.Booking, recorder audit.Recorder) *CLI {
	return &CLI{
		cfg:       cfg,
		auth:      auth,
		customers: customers,
		bookings:  bookings,
		recorder:  recorder,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops the main menu until the user exits or input ends.
func (c *CLI) Run() error {
	log.Info().Str("app", c.cfg.App.Name).Msg("Starting up booking desk.")

	for {
		c.printf("\n--- Welcome to Car Service Booking System ---\n")
		c.printf("1. Staff Login\n")
		c.printf("2. Customer Login\n")
		c.printf("3. Exit\n")

		choice, err := c.promptInt("Enter your choice: ")
		if err != nil {
			return nil
		}

		switch choice {
		case 1:
			c.staffMenu()
		case 2:
			c.customerMenu()
		case 3:
			c.printf("Exiting the system. Thank you!\n")

			return nil
		default:
			c.printf("Invalid choice. Try again.\n")
		}
	}
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) record(username, action string) {
	if err := c.recorder.Record(username, action); err != nil {
		log.Error().Err(err).Msg("failed to record staff activity")
	}
}
