// Package msg renders one-line status messages with a kind-specific prefix,
// icon, and color. Built-in kinds cover the usual CLI vocabulary (info,
// success, warning, error, ...); custom kinds can be registered at runtime.
//
// Output goes through an explicit [Service] instance so callers control the
// writer, clock, and display configuration; a package-level default service
// writing to stdout backs the top-level convenience functions.
package msg
