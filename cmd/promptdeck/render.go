package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"promptdeck-hq/promptdeck/pkg/markdown"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Convert markdown on stdin to HTML on stdout",
	Long: `Convert markdown on stdin to HTML on stdout using the same converter
the web front-end applies to model output.

Example:
  promptdeck render < notes.md > notes.html`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	fmt.Println(markdown.Render(string(input)))
	return nil
}
