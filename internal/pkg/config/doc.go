// Package config provides functionality for loading and validating application configuration.
//
// Settings are read once at process start from an optional config file, an optional
// credentials file and environment variables, validated, and handed to the rest of
// the application as an immutable *AppConfig. There is no hot reload.
package config
