package app

import (
	"context"

	"github.com/Mikeoo31/cloud-atlas/internal/client/picture"
	"github.com/Mikeoo31/cloud-atlas/internal/config"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/service/download"
)

// ExecuteDownloadCommand saves the picture at url into the configured output folder.
func ExecuteDownloadCommand(ctx context.Context, cfg *config.Config, url, fileName string) error {
	client, err := picture.NewClient(cfg)
	if err != nil {
		return err
	}

	saver := download.NewFileSaver(cfg, client)

	ctx = logger.WithName(ctx, "download")

	return download.DownloadImage(ctx, saver, url, fileName)
}
