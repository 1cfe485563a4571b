package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mikeoo31/cloud-atlas/internal/client/picture"
	"github.com/Mikeoo31/cloud-atlas/internal/config"
	"github.com/Mikeoo31/cloud-atlas/internal/constants"
	"github.com/Mikeoo31/cloud-atlas/internal/format"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/utils"
)

// FileSaver is a Saver writing pictures into the configured output folder.
type FileSaver struct {
	cfg           *config.Config
	client        picture.Client
	isProgressBar bool
}

// Option customizes a FileSaver.
type Option func(s *FileSaver)

// WithProgressBar enables or disables the terminal progress bar.
// It is enabled by default and shown only while the log level is info or lower.
func WithProgressBar(enabled bool) Option {
	return func(s *FileSaver) {
		s.isProgressBar = enabled
	}
}

// NewFileSaver creates a FileSaver fetching through client.
func NewFileSaver(cfg *config.Config, client picture.Client, options ...Option) *FileSaver {
	s := &FileSaver{
		cfg:           cfg,
		client:        client,
		isProgressBar: true,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Save implements Saver.
func (s *FileSaver) Save(ctx context.Context, url, fileName string) error {
	_, err := s.Download(ctx, url, fileName)

	return err
}

// Download saves one picture and reports what happened.
func (s *FileSaver) Download(ctx context.Context, url, fileName string) (*SaveResult, error) {
	ctx = logger.WithKV(ctx, "url", url)

	if s.cfg.DryRun {
		return s.preview(ctx, url, fileName)
	}

	// A name that already has an extension can be checked before any request.
	baseName := destinationBaseName(url, fileName)
	if filepath.Ext(baseName) != "" {
		if result, skipped, err := s.checkExisting(ctx, s.destinationPath(baseName)); skipped || err != nil {
			return result, err
		}
	}

	fetchResult, err := s.client.DownloadFromURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch picture: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	destinationPath := s.destinationPath(utils.EnsureFileExtension(
		baseName,
		utils.ExtensionForContentType(fetchResult.ContentType)))

	if result, skipped, checkErr := s.checkExisting(ctx, destinationPath); skipped || checkErr != nil {
		return result, checkErr
	}

	if err = os.MkdirAll(filepath.Dir(destinationPath), constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	bytesWritten, err := s.writeFile(ctx, fetchResult, destinationPath)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Saved '%s' (%s)", destinationPath, format.FormatSize(bytesWritten))

	return &SaveResult{
		Path:         destinationPath,
		BytesWritten: bytesWritten,
	}, nil
}

func (s *FileSaver) preview(ctx context.Context, url, fileName string) (*SaveResult, error) {
	info, err := s.client.Probe(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to probe picture: %w", err)
	}

	destinationPath := s.destinationPath(utils.EnsureFileExtension(
		destinationBaseName(url, fileName),
		utils.ExtensionForContentType(info.ContentType)))

	isExist, err := utils.IsFileExist(destinationPath)
	if err != nil {
		return nil, err
	}

	if isExist && !s.cfg.ReplaceFiles {
		logger.Infof(ctx, "[DRY-RUN] File '%s' already exists, would skip", destinationPath)
	} else {
		logger.Infof(ctx, "[DRY-RUN] Would save '%s' (%s)", destinationPath, format.FormatSize(info.ContentLength))
	}

	return &SaveResult{
		Path:         destinationPath,
		BytesWritten: max(info.ContentLength, 0),
		IsExist:      isExist,
		IsDryRun:     true,
	}, nil
}

// checkExisting reports whether the download must be skipped because the file exists.
func (s *FileSaver) checkExisting(ctx context.Context, destinationPath string) (*SaveResult, bool, error) {
	if s.cfg.ReplaceFiles {
		return nil, false, nil
	}

	isExist, err := utils.IsFileExist(destinationPath)
	if err != nil {
		return nil, false, err
	}

	if !isExist {
		return nil, false, nil
	}

	logger.Infof(ctx, "File '%s' already exists, skipping download", destinationPath)

	return &SaveResult{Path: destinationPath, IsExist: true}, true, nil
}

func (s *FileSaver) destinationPath(name string) string {
	return filepath.Join(s.cfg.OutputPath, name)
}

// destinationBaseName picks the file name: the explicit one, else the URL's
// last path segment, else a fixed default. The result is always sanitized.
func destinationBaseName(url, fileName string) string {
	name := strings.TrimSpace(fileName)
	if name == "" {
		name = utils.FileNameFromURL(url)
	}

	name = utils.SanitizeFilename(name)
	if name == "" {
		name = constants.DefaultDownloadName
	}

	return name
}
