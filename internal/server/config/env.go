package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment surface of the server. Pointer fields
// distinguish "unset" from "set to zero".
type envConfig struct {
	EndpointAddr             *string  `env:"ADDRESS"`
	DatabaseDSN              *string  `env:"DATABASE_DSN"`
	SecretKey                *string  `env:"SECRET_KEY"`
	TokenAlgorithm           *string  `env:"TOKEN_ALGORITHM"`
	AccessTokenExpireMinutes *int     `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	BcryptCost               *int     `env:"BCRYPT_COST"`
	AllowedOrigins           []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// parseEnv overlays configuration values from environment variables onto the
// provided Config instance. Unset variables leave the current values intact.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenAlgorithm != nil {
		config.TokenAlgorithm = *c.TokenAlgorithm
	}
	if c.AccessTokenExpireMinutes != nil {
		config.AccessTokenValidityDuration = time.Duration(*c.AccessTokenExpireMinutes) * time.Minute
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
}
