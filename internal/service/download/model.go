package download

// SaveResult describes what a FileSaver did with one URL.
type SaveResult struct {
	// Path is the destination file.
	Path string
	// BytesWritten is the number of bytes saved, or the announced size in dry-run mode.
	BytesWritten int64
	// IsExist is true when the destination already existed and was left untouched.
	IsExist bool
	// IsDryRun is true when nothing was written.
	IsDryRun bool
}
