// Package audit appends one timestamped line per staff action to a durable
// activity log.
package audit

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"pitstop/config"
)

const (
	ActionLoginFailed    = "Failed login attempt"
	ActionLoginSucceeded = "Successful login"
	ActionCreatedProfile = "Created customer profile"
	ActionCreatedBooking = "Created booking"
	ActionCancelled      = "Cancelled booking"
	ActionViewedByDate   = "Viewed bookings by date"
	ActionExported       = "Exported bookings to file"
	ActionLoggedOut      = "Logged out"
)

type Recorder interface {
	Record(username, action string) error
	Close() error
}

// captureWriter keeps the last write error; zerolog itself discards them.
type captureWriter struct {
	w   io.Writer
	err error
}

func (c *captureWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		c.err = err
	}

	return n, err
}

type fileRecorder struct {
	file    *os.File
	capture *captureWriter
	logger  zerolog.Logger
}

// New opens the configured activity log for appending and returns a Recorder
// writing one JSON line per action.
func New(cfg *config.Config) (Recorder, error) {
	file, err := os.OpenFile(cfg.Audit.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening staff activity log")
	}

	capture := &captureWriter{w: file}

	return &fileRecorder{
		file:    file,
		capture: capture,
		logger:  zerolog.New(capture).With().Timestamp().Logger(),
	}, nil
}

func (r *fileRecorder) Record(username, action string) error {
	r.capture.err = nil
	r.logger.Log().Str("user", username).Msg(action)

	return errors.Wrap(r.capture.err, "appending to staff activity log")
}

func (r *fileRecorder) Close() error {
	return errors.Wrap(r.file.Close(), "closing staff activity log")
}
