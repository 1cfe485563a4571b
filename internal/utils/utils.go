package utils

import (
	"bufio"
	"math"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// ImageJPEGMimeType is the MIME type for JPEG images.
	ImageJPEGMimeType = "image/jpeg"
	// ImagePNGMimeType is the MIME type for PNG images.
	ImagePNGMimeType = "image/png"
	// ImageGIFMimeType is the MIME type for GIF images.
	ImageGIFMimeType = "image/gif"
	// ImageWebPMimeType is the MIME type for WebP images.
	ImageWebPMimeType = "image/webp"
	// ImageSVGMimeType is the MIME type for SVG images.
	ImageSVGMimeType = "image/svg+xml"
)

var (
	// invalidCharsPattern matches ASCII control characters and the characters Windows forbids: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// textContentTypePatterns match content types whose bodies are safe to log as text.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/problem\+json$`),
	}

	// windowsReservedNames cannot be used as file names on Windows, whatever the extension.
	//nolint:gochecknoglobals // This is an immutable map used as a constant for validation purposes.
	windowsReservedNames = map[string]struct{}{
		"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
		"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
		"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
		"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
		"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
	}

	// imageExtensions pins the extension for common picture types,
	// mime.ExtensionsByType is platform dependent and may return ".jfif" for JPEG.
	//nolint:gochecknoglobals // This is an immutable map used as a constant lookup table.
	imageExtensions = map[string]string{
		ImageJPEGMimeType: ".jpg",
		ImagePNGMimeType:  ".png",
		ImageGIFMimeType:  ".gif",
		ImageWebPMimeType: ".webp",
		ImageSVGMimeType:  ".svg",
	}
)

// SafeUint64ToInt64 converts a uint64 to an int64, clamping at math.MaxInt64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// SanitizeFilename makes a file name valid on both Windows and Unix-like systems.
// Forbidden characters become underscores, reserved Windows names get an underscore prefix,
// and trailing dots are dropped. An empty input stays empty.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	result := invalidCharsPattern.ReplaceAllString(name, "_")

	baseName := strings.TrimSuffix(result, filepath.Ext(result))
	if _, ok := windowsReservedNames[strings.ToUpper(baseName)]; ok {
		result = "_" + result
	}

	result = strings.TrimRight(result, ".")
	if result == "" {
		result = "_"
	}

	return result
}

// EnsureFileExtension appends extension when the file name has none.
// A name that already carries any extension is returned unchanged.
func EnsureFileExtension(filename, extension string) string {
	if extension == "" || filepath.Ext(filename) != "" {
		return filename
	}

	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return filename + extension
}

// FileNameFromURL returns the last path segment of a URL, or "" if there is none.
func FileNameFromURL(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}

	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return ""
	}

	return base
}

// ExtensionForContentType returns a file extension for the media type, or "" if unknown.
func ExtensionForContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	if ext, ok := imageExtensions[mediaType]; ok {
		return ext
	}

	extensions, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(extensions) == 0 {
		return ""
	}

	return extensions[0]
}

// IsFileExist reports whether a regular file exists at path.
// Errors other than "not exist" are returned as is.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// ReadLines returns the trimmed non-empty lines of a text file in order.
// Lines starting with '#' are comments and are skipped. Duplicates are kept.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	var (
		lines   []string
		scanner = bufio.NewScanner(file)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// IsTextContentType reports whether a body of this content type is readable text.
// A charset, when present, must be utf-8 or us-ascii.
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}
