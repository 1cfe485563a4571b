package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap/zapcore"

	"github.com/Mikeoo31/cloud-atlas/internal/client/picture"
	"github.com/Mikeoo31/cloud-atlas/internal/constants"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
)

// partFileOptions always truncate: a leftover .part file is an abandoned download.
const partFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

// writeFile streams the body into a uniquely named .part file next to
// destinationPath and renames it once the byte count matches.
// The .part file is removed on any failure.
func (s *FileSaver) writeFile(
	ctx context.Context,
	fetchResult *picture.FetchResult,
	destinationPath string,
) (int64, error) {
	tempPath := destinationPath + "." + uuid.NewString() + constants.PartFileExtension

	f, err := os.OpenFile(filepath.Clean(tempPath), partFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var isSaved bool

	defer func() {
		if isSaved {
			return
		}

		_ = f.Close()

		if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempPath, removeErr)
		}
	}()

	var writer io.Writer = f

	if s.isProgressBar && logger.Level() <= zapcore.InfoLevel {
		bar := progressbar.DefaultBytes(fetchResult.TotalBytes, "Downloading")
		defer bar.Close() //nolint:errcheck // Error on close is not critical here.

		writer = io.MultiWriter(f, bar)
	}

	bytesWritten, err := s.copyBody(ctx, writer, fetchResult.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	if fetchResult.TotalBytes >= 0 && bytesWritten != fetchResult.TotalBytes {
		return 0, fmt.Errorf("%w: wrote %d bytes, expected %d bytes",
			ErrIncompleteDownload, bytesWritten, fetchResult.TotalBytes)
	}

	if err = f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err = os.Rename(tempPath, destinationPath); err != nil {
		return 0, fmt.Errorf("failed to move temporary file into place: %w", err)
	}

	isSaved = true

	return bytesWritten, nil
}

// copyBody copies everything, or at most ParsedDownloadSpeedLimit bytes per second.
func (s *FileSaver) copyBody(ctx context.Context, writer io.Writer, body io.Reader) (int64, error) {
	limit := s.cfg.ParsedDownloadSpeedLimit
	if limit <= 0 {
		return io.Copy(writer, body)
	}

	var bytesWritten int64

	for {
		n, err := io.CopyN(writer, body, limit)
		bytesWritten += n

		if errors.Is(err, io.EOF) {
			return bytesWritten, nil
		}

		if err != nil {
			return bytesWritten, err
		}

		select {
		case <-ctx.Done():
			return bytesWritten, ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
