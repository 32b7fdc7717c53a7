// Package config loads and validates the PromptDeck configuration.
//
// Configuration is read from a YAML file, filled in with defaults, then
// overridden from the process environment. The OpenRouter credential is
// only ever sourced from configuration at construction time; its absence
// is not an error, it selects demo mode.
package config
