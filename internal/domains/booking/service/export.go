package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"pitstop/internal/domains/booking/model/dto"
	"pitstop/shared/failure"
)

// Export writes every current booking to w in store order, one text block per
// booking with a blank line between blocks.
func (s *serviceImpl) Export(ctx context.Context, w io.Writer) error {
	bookings, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list bookings for export: %w", err)
	}

	bw := bufio.NewWriter(w)

	for i, booking := range bookings {
		if i > 0 {
			fmt.Fprintln(bw)
		}

		var res dto.BookingResponse
		res.FromModel(booking)

		fmt.Fprintln(bw, res.FormatText())
	}

	if err := bw.Flush(); err != nil {
		log.Error().Err(err).Msg("failed to write bookings export")

		return failure.IOError(errors.Wrap(err, "writing bookings export")) //nolint:wrapcheck
	}

	return nil
}

// ExportToFile exports through a temporary file renamed into place, so a
// failed export never leaves a partial file at path.
func (s *serviceImpl) ExportToFile(ctx context.Context, path string) error {
	tmp := path + ".tmp"

	file, err := os.Create(tmp)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open export file")

		return failure.IOError(errors.Wrap(err, "opening export file")) //nolint:wrapcheck
	}

	if err := s.Export(ctx, file); err != nil {
		file.Close()
		os.Remove(tmp)

		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmp)

		return failure.IOError(errors.Wrap(err, "closing export file")) //nolint:wrapcheck
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)

		return failure.IOError(errors.Wrap(err, "finalizing export file")) //nolint:wrapcheck
	}

	log.Info().Str("path", path).Msg("bookings exported")

	return nil
}
