// Package format renders picture metadata for display: byte sizes as
// B/KB/MB strings and color values as #RRGGBB.
package format
