// Package art renders decorative terminal output: block-glyph banners,
// separator rules, boxed text with an optional title, and a character
// reveal effect.
//
// All rendering functions return plain strings (with embedded ANSI
// escape sequences) and leave writing to the caller, except Glitcher,
// which animates directly onto its writer.
package art
