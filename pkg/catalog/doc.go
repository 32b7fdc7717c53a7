// Package catalog holds the in-process model catalog for the web front-end.
//
// The catalog is populated once at startup and refreshed on an explicit
// cron schedule rather than fetched per request. Handlers read immutable
// snapshots, so no request ever blocks on a refresh. Nothing is persisted;
// the list lives in process memory for the process lifetime.
package catalog
