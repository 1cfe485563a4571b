package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Mikeoo31/cloud-atlas/internal/config"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/tagcolor"
	"github.com/Mikeoo31/cloud-atlas/internal/utils"
)

// TagsOptions tunes ExecuteTagsCommand.
type TagsOptions struct {
	// TagsFile is an optional file with one tag per line, read before the arguments.
	TagsFile string
	// IsSaved persists newly assigned colors to the configured store.
	IsSaved bool
}

// ExecuteTagsCommand prints "tag: color" for every tag, assigning colors to new tags.
// Tags already in the store keep their color.
func ExecuteTagsCommand(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	tags []string,
	opts TagsOptions,
) error {
	if opts.TagsFile != "" {
		fileTags, err := utils.ReadLines(opts.TagsFile)
		if err != nil {
			return fmt.Errorf("failed to read tags file: %w", err)
		}

		tags = append(fileTags, tags...)
	}

	registry, err := tagcolor.OpenRegistry(ctx, cfg.TagColorsPath)
	if err != nil {
		return err
	}

	colors, added := registry.Colors(tags)

	printed := make(map[string]struct{}, len(colors))

	for _, tag := range tags {
		if _, ok := printed[tag]; ok {
			continue
		}

		printed[tag] = struct{}{}

		if _, err = fmt.Fprintf(w, "%s: %s\n", tagcolor.Render(tag, colors[tag]), colors[tag]); err != nil {
			return err
		}
	}

	if len(added) == 0 || !opts.IsSaved {
		return nil
	}

	if err = registry.Save(); err != nil {
		return err
	}

	logger.Infof(ctx, "Assigned colors to %d new tags in '%s'", len(added), cfg.TagColorsPath)

	return nil
}
