// Package openrouter implements the client for the OpenRouter aggregation
// API (https://openrouter.ai/api/v1).
//
// The client has a deliberately soft failure contract: ListModels always
// returns a usable model list and Complete always returns displayable text.
// Missing credentials switch the client into demo mode, where both
// operations answer from fixed built-in content without any network access.
package openrouter
