package di

import (
	"pitstop/config"
	"pitstop/internal/audit"
)

// ProvideRecorder opens the staff activity log and hands wire a cleanup that
// closes it on shutdown.
func ProvideRecorder(cfg *config.Config) (audit.Recorder, func(), error) {
	recorder, err := audit.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return recorder, func() { _ = recorder.Close() }, nil
}
