package config

import (
	"strings"
)

// Config represents the persistent studyforge configuration stored as
// config.toml in the .studyforge/ directory. The TOML layout uses sections
// for logical grouping.
type Config struct {
	Version     int               `toml:"version"`
	Storage     StorageConfig     `toml:"storage"`
	Server      ServerConfig      `toml:"server"`
	API         APIConfig         `toml:"api"`
	Client      ClientConfig      `toml:"client"`
	Eventstream EventstreamConfig `toml:"eventstream"`
}

// StorageConfig holds shared storage settings used by both servers.
type StorageConfig struct {
	Driver      string `toml:"driver,omitempty"`
	SQLitePath  string `toml:"sqlite_path,omitempty"`
	PostgresDSN string `toml:"postgres_dsn,omitempty"`
}

// ServerConfig holds settings for the streaming generation server.
type ServerConfig struct {
	Listen   string `toml:"listen,omitempty"`
	Provider string `toml:"provider,omitempty"`
	Upstream string `toml:"upstream,omitempty"`
	Model    string `toml:"model,omitempty"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// ClientConfig holds settings for CLI commands that connect to the running
// servers (e.g. studyforge generate, studyforge guides). Values are full
// URLs (scheme + host + port).
type ClientConfig struct {
	ServerTarget string `toml:"server_target,omitempty"`
	APITarget    string `toml:"api_target,omitempty"`
}

// EventstreamConfig holds event stream publisher settings.
type EventstreamConfig struct {
	Provider string `toml:"provider,omitempty"`
	Brokers  string `toml:"brokers,omitempty"`
	Topic    string `toml:"topic,omitempty"`
}

// BrokerList splits the comma-separated brokers value into a slice.
func (c EventstreamConfig) BrokerList() []string {
	if c.Brokers == "" {
		return nil
	}

	parts := strings.Split(c.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}

	return brokers
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"storage.driver": {
		get: func(c *Config) string { return c.Storage.Driver },
		set: func(c *Config, v string) error { c.Storage.Driver = v; return nil },
	},
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"storage.postgres_dsn": {
		get: func(c *Config) string { return c.Storage.PostgresDSN },
		set: func(c *Config, v string) error { c.Storage.PostgresDSN = v; return nil },
	},
	"server.listen": {
		get: func(c *Config) string { return c.Server.Listen },
		set: func(c *Config, v string) error { c.Server.Listen = v; return nil },
	},
	"server.provider": {
		get: func(c *Config) string { return c.Server.Provider },
		set: func(c *Config, v string) error { c.Server.Provider = v; return nil },
	},
	"server.upstream": {
		get: func(c *Config) string { return c.Server.Upstream },
		set: func(c *Config, v string) error { c.Server.Upstream = v; return nil },
	},
	"server.model": {
		get: func(c *Config) string { return c.Server.Model },
		set: func(c *Config, v string) error { c.Server.Model = v; return nil },
	},
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"client.server_target": {
		get: func(c *Config) string { return c.Client.ServerTarget },
		set: func(c *Config, v string) error { c.Client.ServerTarget = v; return nil },
	},
	"client.api_target": {
		get: func(c *Config) string { return c.Client.APITarget },
		set: func(c *Config, v string) error { c.Client.APITarget = v; return nil },
	},
	"eventstream.provider": {
		get: func(c *Config) string { return c.Eventstream.Provider },
		set: func(c *Config, v string) error { c.Eventstream.Provider = v; return nil },
	},
	"eventstream.brokers": {
		get: func(c *Config) string { return c.Eventstream.Brokers },
		set: func(c *Config, v string) error { c.Eventstream.Brokers = v; return nil },
	},
	"eventstream.topic": {
		get: func(c *Config) string { return c.Eventstream.Topic },
		set: func(c *Config, v string) error { c.Eventstream.Topic = v; return nil },
	},
}
