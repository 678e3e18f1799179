package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"pitstop/config"
	"pitstop/shared/failure"
)

type Auth interface {
	Authenticate(ctx context.Context, username, password string) error
}

type serviceImpl struct {
	cfg *config.Config
}

func New(cfg *config.Config) Auth {
	return &serviceImpl{
		cfg: cfg,
	}
}

// Authenticate checks the pair against the static staff credential list.
// Exact match only; no lockout, no throttling.
func (s *serviceImpl) Authenticate(_ context.Context, username, password string) error {
	stored, ok := s.cfg.Staff.Credentials[username]
	if !ok || stored != password {
		log.Warn().Str("username", username).Msg("staff authentication failed")

		return failure.InvalidCredentials
	}

	return nil
}
