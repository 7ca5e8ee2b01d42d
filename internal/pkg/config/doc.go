// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by PORTFOLIO_* environment
// variables, and validated before the REST server or the CLI start using them.
package config
