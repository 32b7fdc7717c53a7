// PromptDeck is a small web front-end for the OpenRouter LLM aggregation API.
//
// It serves a single page with a prompt form and a model selector, forwards
// submissions to OpenRouter, and renders the response as raw markdown plus
// converted HTML. Without an OPENROUTER_API_KEY it runs fully offline in
// demo mode.
//
// Usage:
//
//	# Start the web server with default configuration (demo mode without a key)
//	promptdeck serve
//
//	# Start with a custom configuration file
//	promptdeck serve --config /path/to/config.yaml
//
//	# Print the model catalog
//	promptdeck models
//
//	# Convert markdown on stdin to HTML on stdout
//	promptdeck render < notes.md
//
//	# Show version information
//	promptdeck version
package main

func main() {
	Execute()
}
