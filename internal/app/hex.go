package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Mikeoo31/cloud-atlas/internal/format"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
)

// ExecuteHexCommand prints the #rrggbb form of every color.
// Invalid colors are logged and skipped; the returned error is the first one.
func ExecuteHexCommand(ctx context.Context, w io.Writer, colors []string) error {
	var firstErr error

	for _, color := range colors {
		hexColor, err := format.ToHexColor(color)
		if err != nil {
			logger.Errorf(ctx, "Skipping color: %v", err)

			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		if _, err = fmt.Fprintln(w, hexColor); err != nil {
			return err
		}
	}

	return firstErr
}
