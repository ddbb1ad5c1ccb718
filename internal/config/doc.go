// Package config provides loading, merging, and validation of the settings
// that steer an augur-config run (where to read credentials, where to write
// augur.config.json, which interactive sections to enable, logging).
//
// Settings are assembled from multiple sources. A source collected earlier
// wins over a later one for every non-zero field:
//  1. Command-line flags
//  2. Environment variables (AUGUR_CONFIG_*, optionally from a .env file)
//  3. JSON settings file
//  4. Built-in defaults
//
// The main entry point is [GetSettings].
package config
