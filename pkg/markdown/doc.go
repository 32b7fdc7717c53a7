// Package markdown converts a small, fixed subset of markdown to HTML
// without a third-party markdown library.
//
// Render is pure and deterministic. It is also the HTML-injection security
// boundary for model output: every literal <, > and & in the input is
// escaped before any other processing, including inside code spans and
// fenced blocks.
package markdown
