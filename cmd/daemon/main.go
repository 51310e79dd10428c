// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ManuGH/edgeip/internal/config"
	"github.com/ManuGH/edgeip/internal/daemon"
	"github.com/ManuGH/edgeip/internal/health"
	edgelog "github.com/ManuGH/edgeip/internal/log"
	"github.com/ManuGH/edgeip/internal/telemetry"
	"github.com/ManuGH/edgeip/internal/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "config":
			os.Exit(runConfigCLI(os.Args[2:]))
		case "healthcheck":
			os.Exit(runHealthcheckCLI(os.Args[2:]))
		}
	}

	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Safe defaults until the config is loaded.
	edgelog.Configure(edgelog.Config{
		Level:   "info",
		Service: "edgeip",
		Version: version.Version,
	})
	logger := edgelog.WithComponent("daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	effectiveConfigPath := resolveConfigPath(*configPath)

	// Precedence: ENV > File > Defaults
	loader := config.NewLoader(effectiveConfigPath, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(edgelog.FieldEvent, "config.load_failed").
			Str("config_path", effectiveConfigPath).
			Msg("failed to load configuration")
	}

	edgelog.Configure(edgelog.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: cfg.Version,
	})
	logger = edgelog.WithComponent("daemon")

	if effectiveConfigPath != "" {
		logger.Info().
			Str(edgelog.FieldEvent, "config.loaded").
			Str("source", "file").
			Str("path", effectiveConfigPath).
			Msg("loaded configuration from file")
	} else {
		logger.Info().
			Str(edgelog.FieldEvent, "config.loaded").
			Str("source", "env+defaults").
			Msg("loaded configuration from environment and defaults")
	}

	// Installed exactly once, before any listener is opened.
	if err := edgelog.InstallCrashHook(cfg.CrashOutput); err != nil {
		logger.Fatal().
			Err(err).
			Str(edgelog.FieldEvent, "crash_hook.install_failed").
			Msg("failed to install crash hook")
	}

	provider, err := telemetry.NewProvider(ctx, telemetryConfig(cfg))
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(edgelog.FieldEvent, "telemetry.init_failed").
			Msg("failed to initialise tracing")
	}

	serverCfg := config.ParseServerConfigForApp(cfg)

	hm := health.NewManager(cfg.Version)
	drain := health.NewDrainChecker()
	hm.RegisterChecker(drain)

	logger.Info().
		Str(edgelog.FieldEvent, "startup").
		Str("version", version.Version).
		Str("commit", version.Commit).
		Str("build_date", version.Date).
		Str("addr", serverCfg.ListenAddr).
		Str("trusted_header", cfg.Edge.TrustedHeader).
		Str("response_format", cfg.Response.Format).
		Bool("tracing", cfg.Telemetry.Enabled).
		Msg("starting edgeip")

	deps := daemon.Deps{
		Logger:         logger,
		APIHandler:     newAPIHandler(cfg, hm),
		MetricsHandler: promhttp.Handler(),
		Drainer:        drain,
	}

	mgr, err := daemon.NewManager(serverCfg, deps)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str(edgelog.FieldEvent, "manager.creation.failed").
			Msg("failed to create daemon manager")
	}
	mgr.RegisterShutdownHook("telemetry", provider.Shutdown)

	var cfgHolder *config.ConfigHolder
	if effectiveConfigPath != "" {
		cfgHolder = config.NewConfigHolder(cfg, loader, effectiveConfigPath)
		mgr.RegisterShutdownHook("config-watcher", func(context.Context) error {
			cfgHolder.Stop()
			return nil
		})
	}

	app := daemon.NewApp(logger, mgr, cfgHolder)
	if err := app.Run(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Str(edgelog.FieldEvent, "manager.failed").
			Msg("daemon app failed")
	}

	logger.Info().Msg("server exiting")
}
