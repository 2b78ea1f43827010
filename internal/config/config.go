// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the project
// hub. It is populated by merging environment variables, command-line flags,
// an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the flat document store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the terminal client's connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds the terminal client's local session settings.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token lifecycle and versioning settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid
	// (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET /api/status.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the flat document store settings.
type Storage struct {
	// DataDir is a data directory to initialize the storage with at startup.
	// When empty the server waits for POST /api/init.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// ConfigFile is where the chosen data directory is remembered between
	// restarts.
	// Env: STORAGE_CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE"`

	// DB switches the document backend from data.json files to a SQL table.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQL document backend.
type DB struct {
	// DSN selects the driver by scheme: postgres:// and postgresql:// use
	// pgx, anything else is opened with sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP API ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the terminal client's connection to the HTTP API.
type Adapter struct {
	// HTTPAddress is the base address of the HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds local files of the terminal client.
type Session struct {
	// File is the JSON file holding the persisted session pointer.
	// Env: SESSION_FILE
	File string `env:"FILE"`

	// LogFile is where the client writes its logs.
	// Env: SESSION_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Workers holds intervals of background workers.
type Workers struct {
	// HealthInterval is how often the server refreshes the gRPC health status.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`

	// RefreshInterval is how often the client reloads its mirrored state.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are merged so that a field set by an earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
