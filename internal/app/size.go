package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Mikeoo31/cloud-atlas/internal/format"
	"github.com/Mikeoo31/cloud-atlas/internal/logger"
	"github.com/Mikeoo31/cloud-atlas/internal/utils"
)

// ErrInvalidSize indicates that an argument is neither a byte count nor a humanized size.
var ErrInvalidSize = errors.New("invalid size")

// ExecuteSizeCommand prints every size on its own line.
// Arguments are plain byte counts ("2048") or humanized sizes ("2 KiB").
func ExecuteSizeCommand(ctx context.Context, w io.Writer, args []string) error {
	for _, arg := range args {
		size, err := parseSize(arg)
		if err != nil {
			return err
		}

		logger.Debugf(ctx, "Formatting %d bytes", size)

		if _, err = fmt.Fprintln(w, format.FormatSize(size)); err != nil {
			return err
		}
	}

	return nil
}

func parseSize(arg string) (int64, error) {
	arg = strings.TrimSpace(arg)

	if size, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return size, nil
	}

	size, err := humanize.ParseBytes(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, arg)
	}

	return utils.SafeUint64ToInt64(size), nil
}
