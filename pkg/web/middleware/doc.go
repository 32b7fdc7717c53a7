// Package middleware contains HTTP middleware for the web front-end:
// request IDs, structured request logging, page metrics, and panic recovery.
package middleware
