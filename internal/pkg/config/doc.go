// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file with environment variable overrides
// (prefix HABIT_, nested keys joined with underscores), validated, and
// handed to the entry points in cmd/. A .env file in the working directory
// is loaded first when present.
package config
