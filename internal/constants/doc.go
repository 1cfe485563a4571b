// Package constants holds file-system values shared across packages.
package constants
