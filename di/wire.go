//go:build wireinject
// +build wireinject

package di

import (
	"pitstop/config"
	"pitstop/transport/cli"

	bookingRepository "pitstop/internal/domains/booking/repository"
	bookingService "pitstop/internal/domains/booking/service"
	customerRepository "pitstop/internal/domains/customer/repository"
	customerService "pitstop/internal/domains/customer/service"

	"github.com/google/wire"

	authService "pitstop/internal/domains/auth/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	customerDomain,
	bookingDomain,
	authDomain,
)

var collaborators = wire.NewSet(
	ProvideRecorder,
)

func InitializeApp() (*cli.CLI, func(), error) {
	wire.Build(
		configurations,
		domains,
		collaborators,
		cli.New,
	)

	return nil, nil, nil
}
