// Package config loads and merges the server configuration.
//
// Values are collected from environment variables, command-line flags and an
// optional JSON file, merged in that priority order, and validated before
// the application starts.
package config
