// Package logtail reads the tail of pantry's JSON log file and decodes its
// entries for the diagnostics view.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// bounded however large the file grows. Parse understands the zap JSON
// encoder layout written by internal/logging and degrades to the raw line
// for anything else.
package logtail
