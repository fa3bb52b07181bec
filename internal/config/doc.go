// Package config provides configuration loading, merging, and validation
// for the admin client and the development receiver.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file in the working directory (optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] and [GetServerConfig].
package config
