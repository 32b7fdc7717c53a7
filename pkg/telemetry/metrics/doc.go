// Package metrics provides Prometheus metrics for the web front-end and
// the outbound OpenRouter client.
//
// A Collector owns a private registry so tests can create collectors
// freely without colliding on the global default registry.
package metrics
