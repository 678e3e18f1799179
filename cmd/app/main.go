package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"pitstop/config"
	"pitstop/di"
	"pitstop/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, cleanup, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("Booking desk terminated with error")
		cleanup()
		os.Exit(1)
	}

	cleanup()
}
