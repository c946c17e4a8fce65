package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ecolink/gwbridge/internal/gateway"
)

type appConfig struct {
	ListenAddr   string
	GatewayAddr  string
	CorsOrigins  []string
	PollInterval time.Duration
	Gateway      gateway.Config
}

func defaultAppConfig() appConfig {
	return appConfig{
		ListenAddr:   ":8340",
		PollInterval: 180 * time.Second,
		Gateway:      gateway.DefaultConfig(),
	}
}

type fileConfig struct {
	ListenAddr       string   `toml:"listen_addr"`
	GatewayAddr      string   `toml:"gateway_addr"`
	CorsOrigins      []string `toml:"cors_origins"`
	PollInterval     string   `toml:"poll_interval"`
	ConnectTimeout   string   `toml:"connect_timeout"`
	ReadTimeout      string   `toml:"read_timeout"`
	FetchAttempts    int      `toml:"fetch_attempts"`
	DiscoveryTimeout string   `toml:"discovery_timeout"`
	DiscoveryRetries int      `toml:"discovery_retries"`
	BroadcastPort    int      `toml:"broadcast_port"`
}

func loadAppConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("listen_addr") {
		if addr := strings.TrimSpace(raw.ListenAddr); addr != "" {
			cfg.ListenAddr = addr
		}
	}
	if meta.IsDefined("gateway_addr") {
		cfg.GatewayAddr = strings.TrimSpace(raw.GatewayAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("fetch_attempts") && raw.FetchAttempts > 0 {
		cfg.Gateway.FetchAttempts = raw.FetchAttempts
	}
	if meta.IsDefined("discovery_retries") && raw.DiscoveryRetries > 0 {
		cfg.Gateway.DiscoveryRetries = raw.DiscoveryRetries
	}
	if meta.IsDefined("broadcast_port") && raw.BroadcastPort > 0 {
		cfg.Gateway.BroadcastPort = raw.BroadcastPort
	}

	durations := []struct {
		key  string
		raw  string
		dest *time.Duration
	}{
		{"poll_interval", raw.PollInterval, &cfg.PollInterval},
		{"connect_timeout", raw.ConnectTimeout, &cfg.Gateway.ConnectTimeout},
		{"read_timeout", raw.ReadTimeout, &cfg.Gateway.ReadTimeout},
		{"discovery_timeout", raw.DiscoveryTimeout, &cfg.Gateway.DiscoveryTimeout},
	}
	for _, d := range durations {
		if !meta.IsDefined(d.key) {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return appConfig{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if parsed <= 0 {
			return appConfig{}, fmt.Errorf("parse %s: must be positive", d.key)
		}
		*d.dest = parsed
	}

	return cfg, nil
}
