package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenIssuer     = "go-project-hub"
	defaultTokenDuration   = 24 * time.Hour
	defaultVersion         = "dev"
	defaultStorageConfig   = "config.json"
	defaultAdapterAddress  = "http://localhost:8080"
	defaultAdapterTimeout  = 15 * time.Second
	defaultSessionFile     = ".project-hub-session.json"
	defaultHealthInterval  = 10 * time.Second
	defaultRefreshInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
		},
		Storage: Storage{
			ConfigFile: defaultStorageConfig,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Session: Session{
			File: defaultSessionFile,
		},
		Workers: Workers{
			HealthInterval:  defaultHealthInterval,
			RefreshInterval: defaultRefreshInterval,
		},
	}
}
