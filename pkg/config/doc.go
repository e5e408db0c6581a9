// Package config handles configuration management for opsline.
// It supports loading configuration from multiple sources including
// YAML or TOML files, environment variables, and command-line flags,
// and resolves the result into the shell, theme and generator list the
// renderer needs.
package config
