// Package logging provides a unified logging interface for the toolkit
// and its demo programs. It abstracts the underlying implementation,
// allowing consistent structured logging across components while
// supporting multiple backends.
package logging
