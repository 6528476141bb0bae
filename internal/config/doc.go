// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to settings such as the log level and the reputation point table
// while keeping configuration details separate from domain rules.
package config
