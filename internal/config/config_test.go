package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		Port:            "8080",
		Env:             "development",
		JWTSecret:       "dev-secret-change-in-production",
		TokenTTLMinutes: 30,
		DBPassword:      "password",
		DBSSLMode:       "disable",
	}
}

func TestConfig_ValidateDevelopmentDefaults(t *testing.T) {
	assert.NoError(t, baseConfig().Validate())
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	c := baseConfig()
	c.Port = ""
	assert.Error(t, c.Validate())

	c = baseConfig()
	c.JWTSecret = ""
	assert.Error(t, c.Validate())

	c = baseConfig()
	c.TokenTTLMinutes = 0
	assert.Error(t, c.Validate())
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Default JWT secret rejected", func(c *Config) {}, true},
		{"Short JWT secret rejected", func(c *Config) {
			c.JWTSecret = "short"
		}, true},
		{"Default DB password rejected", func(c *Config) {
			c.JWTSecret = "secure-secret-at-least-32-chars-long"
		}, true},
		{"Missing TMDB key rejected", func(c *Config) {
			c.JWTSecret = "secure-secret-at-least-32-chars-long"
			c.DBPassword = "secure-password"
		}, true},
		{"Fully configured accepted", func(c *Config) {
			c.JWTSecret = "secure-secret-at-least-32-chars-long"
			c.DBPassword = "secure-password"
			c.TMDBAPIKey = "tmdb-key"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseConfig()
			c.Env = "production"
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
