// Package config provides configuration loading, merging, and validation
// facilities for the portal auth core.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetPortalConfig] for the portal client runtime
// and [GetStubConfig] for the development stub server.
package config
