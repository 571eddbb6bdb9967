// Package config defines the demo server settings and provides helpers to
// load, validate and save them in YAML format.
package config
