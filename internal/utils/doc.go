// Package utils holds small helpers for file names, URLs and content types
// used by the download pipeline and the CLI.
package utils
