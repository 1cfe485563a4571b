// Package download saves remote pictures to local files.
//
// DownloadImage is the entry point: it ignores empty URLs and hands everything
// else to a Saver. FileSaver is the Saver used by the CLI; it streams the
// picture through the picture client into a temporary .part file and renames
// it once the byte count checks out.
package download
