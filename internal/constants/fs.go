package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for saved pictures and stores: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for created output folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

const (
	// PartFileExtension marks a download that has not completed yet.
	PartFileExtension = ".part"

	// DefaultDownloadName is used when neither a file name nor the URL yields one.
	DefaultDownloadName = "download"
)
