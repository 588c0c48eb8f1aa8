// Package widget provides the animated terminal indicators: a spinner driven
// by a background redraw loop and a pull-based progress bar. Both render to a
// single overwritten line and expose scoped helpers that guarantee the line
// is cleared or finalized on every exit path.
//
// The spinner is the only construct here that runs a second goroutine. The
// shared state it reads (the running flag and the message text) is plain
// scalar replacement, so updates are published without a lock and become
// visible on the next redraw tick at the latest.
package widget
