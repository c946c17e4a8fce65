package main

import (
	"flag"

	"github.com/ecolink/gwbridge/internal/gateway"
	"github.com/ecolink/gwbridge/internal/livedata"
	"github.com/ecolink/gwbridge/internal/observability"
	"github.com/ecolink/gwbridge/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to gwbridge.toml")
	flag.Parse()

	logger := observability.InitLogger("gwbridge")

	cfg := defaultAppConfig()
	if *configPath != "" {
		loaded, err := loadAppConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = loaded
	}

	addr := cfg.GatewayAddr
	if addr == "" {
		found, err := gateway.Discover(cfg.Gateway)
		if err != nil {
			logger.Fatal().Err(err).Msg("gateway discovery failed")
		}
		addr = found.Addr()
	}

	client, err := gateway.NewClient(addr, cfg.Gateway)
	if err != nil {
		logger.Fatal().Err(err).Msg("gateway client setup failed")
	}
	logger.Info().Str("gateway", addr).Dur("poll_interval", cfg.PollInterval).
		Msg("bridging gateway live data")

	cache := livedata.NewCache(client.Fetch, cfg.PollInterval)
	srv := server.New(cache, cfg.CorsOrigins)
	if err := srv.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}
