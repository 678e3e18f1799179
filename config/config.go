package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME"      default:"pitstop"`
		Timezone string `envconfig:"TIMEZONE"  default:"UTC"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	} `envconfig:"APP"`

	Booking struct {
		// Locations is the fixed set of service center locations offered to
		// customers; menu choices index into it one-based.
		Locations  []string `envconfig:"LOCATIONS"   default:"Tokyo,Osaka,Kyoto,Nara,Chiba"`
		ExportPath string   `envconfig:"EXPORT_PATH" default:"bookings.txt"`
	} `envconfig:"BOOKING"`

	Staff struct {
		// Credentials is the static username/password list for the staff role
		// gate. There is no account management beyond this list.
		Credentials map[string]string `envconfig:"CREDENTIALS" default:"staff1:pass1,staff2:pass2,staff3:pass3,staff4:pass4,staff5:pass5"`
	} `envconfig:"STAFF"`

	Audit struct {
		LogPath string `envconfig:"LOG_PATH" default:"staff_activity.log"`
	} `envconfig:"AUDIT"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
