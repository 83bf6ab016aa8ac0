// Package config provides configuration loading, merging, and validation
// facilities for the messagely server.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for every non-zero field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
