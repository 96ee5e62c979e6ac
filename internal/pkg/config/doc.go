// Package config provides functionality for loading and validating the CLI configuration.
//
// Settings are read from an optional YAML file and from TEXTCRYPT_* environment
// variables, validated, and handed to the logger factory and the command handlers.
package config
