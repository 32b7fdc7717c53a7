package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "PromptDeck - web front-end for the OpenRouter API",
	Long: `PromptDeck is a small web front-end for the OpenRouter LLM aggregation API.

It serves a single page with a prompt form and a model selector, forwards
submissions to OpenRouter, and renders the response as raw markdown plus
converted HTML. Without a configured API key it runs in demo mode and never
touches the network.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
