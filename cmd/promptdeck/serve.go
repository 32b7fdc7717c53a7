package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"promptdeck-hq/promptdeck/pkg/catalog"
	"promptdeck-hq/promptdeck/pkg/config"
	"promptdeck-hq/promptdeck/pkg/providers"
	"promptdeck-hq/promptdeck/pkg/providers/openrouter"
	"promptdeck-hq/promptdeck/pkg/telemetry/logging"
	"promptdeck-hq/promptdeck/pkg/telemetry/metrics"
	"promptdeck-hq/promptdeck/pkg/web"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	watch         bool
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PromptDeck web server",
	Long: `Start the PromptDeck web server with the specified configuration.

The server presents the prompt form, forwards submissions to OpenRouter, and
renders results. Without a configured API key it runs in demo mode.

Examples:
  # Start with default config (demo mode without OPENROUTER_API_KEY)
  promptdeck serve

  # Start with custom config
  promptdeck serve --config /etc/promptdeck/config.yaml

  # Override listen address
  promptdeck serve --listen 0.0.0.0:8080

  # Reload the catalog refresh schedule when the config file changes
  promptdeck serve --watch

  # Validate config without starting the server
  promptdeck serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.watch, "watch", false, "watch the config file and refresh the catalog on change")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}

	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if _, err := logging.Setup(cfg.Telemetry.Logging); err != nil {
		return err
	}

	if serveFlags.dryRun {
		fmt.Println("configuration valid")
		return nil
	}

	client, err := openrouter.New(providers.ClientConfig{
		BaseURL: cfg.OpenRouter.BaseURL,
		APIKey:  cfg.OpenRouter.APIKey,
		Timeout: cfg.OpenRouter.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create OpenRouter client: %w", err)
	}
	defer client.Close()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	var upstream *metrics.UpstreamMetrics
	if collector != nil {
		upstream = collector.Upstream()
	}

	cat := catalog.New(client, cfg.Catalog.RefreshSchedule, upstream)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := cat.Start(ctx); err != nil {
		return err
	}
	defer cat.Stop()

	if serveFlags.watch {
		watcher, err := config.NewWatcher(cfgFile)
		if err != nil {
			return err
		}
		defer watcher.Stop()

		go func() {
			// The credential and listen address are fixed at process
			// start; a config change only refreshes the catalog.
			_ = watcher.Watch(ctx, func(_ *config.Config) {
				cat.Refresh(context.Background())
			})
		}()
	}

	server := web.NewServer(&cfg.Server, &cfg.Telemetry.Metrics, cat, client, collector)
	return server.Start(ctx)
}
