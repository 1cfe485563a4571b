package download

import (
	"context"
	"strings"
)

// Saver stores the resource at url as a local file named fileName.
// An empty fileName lets the implementation pick a name.
type Saver interface {
	Save(ctx context.Context, url, fileName string) error
}

// DownloadImage saves the picture at url through saver.
// An empty URL is not an error: nothing happens and saver is not called.
func DownloadImage(ctx context.Context, saver Saver, url, fileName string) error {
	if strings.TrimSpace(url) == "" {
		return nil
	}

	return saver.Save(ctx, url, fileName)
}
