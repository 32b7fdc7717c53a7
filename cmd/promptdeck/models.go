package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptdeck-hq/promptdeck/pkg/config"
	"promptdeck-hq/promptdeck/pkg/providers"
	"promptdeck-hq/promptdeck/pkg/providers/openrouter"
	"promptdeck-hq/promptdeck/pkg/telemetry/logging"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Print the model catalog",
	Long: `Print the ordered list of selectable models.

With an API key configured this queries the OpenRouter catalog endpoint;
without one (or on any fetch failure) it prints the built-in fallback list.`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return err
	}

	logCfg := cfg.Telemetry.Logging
	if !verbose {
		// Keep catalog-fetch warnings out of the listing output.
		logCfg.Level = "error"
	}
	if _, err := logging.Setup(logCfg); err != nil {
		return err
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

	if client.DemoMode() {
		fmt.Println("# demo mode: built-in model list")
	}

	for _, m := range client.ListModels(cmd.Context()) {
		fmt.Printf("%-40s %s\n", m.ID, m.Name)
	}
	return nil
}
