package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:             "8080",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBUser:           "homepage",
		DBPassword:       "secure-password",
		DBName:           "homepage",
		DBSSLMode:        "disable",
		DBRecycleSeconds: 299,
		SessionSecret:    "secure-secret-at-least-32-chars-long",
		SessionTTLHours:  24,
		DisplayTimezone:  "Europe/London",
		Env:              "development",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing session secret", func(c *Config) { c.SessionSecret = "" }, true},
		{"Zero recycle age", func(c *Config) { c.DBRecycleSeconds = 0 }, true},
		{"Bogus display timezone", func(c *Config) { c.DisplayTimezone = "Mars/Olympus_Mons" }, true},
		{"Production with default secret", func(c *Config) {
			c.Env = "production"
			c.SessionSecret = "dev-session-secret-change-in-production"
		}, true},
		{"Production with short secret", func(c *Config) {
			c.Env = "production"
			c.SessionSecret = "short"
		}, true},
		{"Production with weak DB password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Production fully configured", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	c := validConfig()
	assert.Equal(t, 299*time.Second, c.DBRecycleAge())
	assert.Equal(t, 24*time.Hour, c.SessionTTL())

	c.SessionTTLHours = 0
	assert.Equal(t, 24*time.Hour, c.SessionTTL(), "TTL falls back to a day when unset")
}

func TestConfig_DisplayLocation(t *testing.T) {
	c := validConfig()
	loc := c.DisplayLocation()
	assert.Equal(t, "Europe/London", loc.String())

	c.DisplayTimezone = "not-a-zone"
	assert.Equal(t, time.UTC, c.DisplayLocation())
}
