package format

import "fmt"

const (
	// UnknownSize is shown for a missing (zero) or negative byte count.
	UnknownSize = "unknown"

	kilobyte = 1024
	megabyte = 1024 * kilobyte
)

// FormatSize renders a byte count: whole bytes below 1 KB, otherwise
// kilobytes or megabytes with two decimals. Larger sizes stay in MB.
func FormatSize(size int64) string {
	switch {
	case size <= 0:
		return UnknownSize
	case size < kilobyte:
		return fmt.Sprintf("%d B", size)
	case size < megabyte:
		return fmt.Sprintf("%.2f KB", float64(size)/kilobyte)
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/megabyte)
	}
}
