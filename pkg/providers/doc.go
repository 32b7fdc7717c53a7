// Package providers contains the provider-agnostic types and the base HTTP
// client used to talk to remote LLM aggregation APIs.
//
// The base client performs exactly one attempt per call with a bounded
// timeout. Callers that need a softer failure contract (always getting a
// displayable string back) build it on top, as pkg/providers/openrouter does.
package providers
