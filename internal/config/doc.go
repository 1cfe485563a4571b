// Package config loads cloud-atlas settings from an optional YAML file and
// CLOUD_ATLAS_* environment variables, validates them and derives parsed values.
package config
