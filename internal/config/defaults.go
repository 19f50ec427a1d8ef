package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress      = "0.0.0.0:3002"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultMaxUploadSize    = 512 << 20
	DefaultQueryTimeout     = 5 * time.Second
	DefaultMaxOpenConns     = 10
	DefaultTokenIssuer      = "vidspark"
	DefaultTokenDuration    = 72 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultRegion           = "ap-south-1"
	DefaultPresignExpiry    = 15 * time.Minute
	DefaultVersion          = "dev"
	DefaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			Version:          DefaultVersion,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				QueryTimeout: DefaultQueryTimeout,
				MaxOpenConns: DefaultMaxOpenConns,
			},
			Objects: Objects{
				Region:        DefaultRegion,
				PresignExpiry: DefaultPresignExpiry,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
			AllowedOrigins: []string{"*"},
		},
	}
}
