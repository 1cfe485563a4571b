//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mikeoo31/cloud-atlas/internal/constants"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{
			name:     "normal value",
			input:    100,
			expected: 100,
		},
		{
			name:     "zero value",
			input:    0,
			expected: 0,
		},
		{
			name:     "max int64 value",
			input:    9223372036854775807,
			expected: 9223372036854775807,
		},
		{
			name:     "value exceeding max int64",
			input:    9223372036854775808,
			expected: 9223372036854775807,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SafeUint64ToInt64(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestSanitizeFilename tests the SanitizeFilename function.
func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "valid filename",
			input:    "test_file.txt",
			expected: "test_file.txt",
		},
		{
			name:     "invalid characters",
			input:    "test<file>.txt",
			expected: "test_file_.txt",
		},
		{
			name:     "Windows reserved name",
			input:    "CON",
			expected: "_CON",
		},
		{
			name:     "trailing dots",
			input:    "test...",
			expected: "test",
		},
		{
			name:     "only dots",
			input:    "...",
			expected: "_",
		},
		{
			name:     "control characters",
			input:    "test\x00file",
			expected: "test_file",
		},
		{
			name:     "reserved name with extension",
			input:    "nul.png",
			expected: "_nul.png",
		},
		{
			name:     "path separators",
			input:    "albums/2024\\cover.jpg",
			expected: "albums_2024_cover.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SanitizeFilename(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestEnsureFileExtension tests the EnsureFileExtension function.
func TestEnsureFileExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filename  string
		extension string
		expected  string
	}{
		{
			name:      "add extension to file without extension",
			filename:  "sunset",
			extension: ".png",
			expected:  "sunset.png",
		},
		{
			name:      "add extension without dot",
			filename:  "sunset",
			extension: "png",
			expected:  "sunset.png",
		},
		{
			name:      "keep existing extension",
			filename:  "sunset.jpeg",
			extension: ".png",
			expected:  "sunset.jpeg",
		},
		{
			name:      "empty extension",
			filename:  "sunset",
			extension: "",
			expected:  "sunset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := EnsureFileExtension(tt.filename, tt.extension)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestFileNameFromURL tests the FileNameFromURL function.
func TestFileNameFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain file",
			input:    "https://cdn.example.com/public/1/sunset.webp",
			expected: "sunset.webp",
		},
		{
			name:     "query is ignored",
			input:    "https://cdn.example.com/a/b.png?imageMogr2/format/webp",
			expected: "b.png",
		},
		{
			name:     "escaped segment",
			input:    "https://cdn.example.com/my%20picture.jpg",
			expected: "my picture.jpg",
		},
		{
			name:     "host only",
			input:    "https://cdn.example.com",
			expected: "",
		},
		{
			name:     "root path",
			input:    "https://cdn.example.com/",
			expected: "",
		},
		{
			name:     "unparsable",
			input:    "http://[::1",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FileNameFromURL(tt.input))
		})
	}
}

// TestExtensionForContentType tests the ExtensionForContentType function.
func TestExtensionForContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    string
	}{
		{
			name:        "jpeg",
			contentType: ImageJPEGMimeType,
			expected:    ".jpg",
		},
		{
			name:        "png with parameters",
			contentType: "image/png; charset=binary",
			expected:    ".png",
		},
		{
			name:        "webp",
			contentType: ImageWebPMimeType,
			expected:    ".webp",
		},
		{
			name:        "empty",
			contentType: "",
			expected:    "",
		},
		{
			name:        "unknown type",
			contentType: "application/x-cloud-atlas-unknown",
			expected:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ExtensionForContentType(tt.contentType))
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "picture.png")

	require.NoError(t, os.WriteFile(filePath, []byte("png"), constants.DefaultFilePermissions))

	exists, err := IsFileExist(filePath)
	require.NoError(t, err)
	assert.True(t, exists)

	// A directory is not a file.
	exists, err = IsFileExist(dir)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = IsFileExist(filepath.Join(dir, "missing.png"))
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestReadLines tests the ReadLines function.
func TestReadLines(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "tags.txt")
	content := "landscape\n\n  # favourites\nportrait  \nlandscape\n"

	require.NoError(t, os.WriteFile(filePath, []byte(content), constants.DefaultFilePermissions))

	lines, err := ReadLines(filePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"landscape", "portrait", "landscape"}, lines)

	_, err = ReadLines("/non/existing/file")
	require.Error(t, err)
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "text/plain",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "text/html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "application/json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "application/problem+json",
			contentType: "application/problem+json",
			expected:    true,
		},
		{
			name:        "image/jpeg",
			contentType: ImageJPEGMimeType,
			expected:    false,
		},
		{
			name:        "text with invalid charset",
			contentType: "text/plain; charset=invalid",
			expected:    false,
		},
		{
			name:        "invalid content type",
			contentType: "invalid/type",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsTextContentType(tt.contentType)
			assert.Equal(t, tt.expected, result)
		})
	}
}
