// Package logging configures the process-wide structured logger.
//
// Components log through log/slog directly; this package only decides the
// level and output format once at startup. The OpenRouter credential is
// never passed to a log call, so no redaction layer is needed.
package logging
