// Package settings resolves application configuration from the single
// JSON-encoded secret blob delivered through the environment.
//
// The blob is decoded into a strongly typed Settings value exactly once per
// Resolve call. Every key must be present in the payload; values are plain
// strings and are accepted as-is, empty or not. Failures are reported as
// recoverable error values so the hosting application decides how startup
// reacts.
package settings
