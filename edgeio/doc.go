// Package edgeio implements the plain-text edge-list input format and the
// plain-text embedding output format the orchestrator reads and writes.
//
// Input: each nonempty line holds two whitespace-separated non-negative
// integer vertex ids. Blank lines and lines that fail to parse as exactly
// two ids are skipped silently; there is no header.
//
// Output: one line per vertex in ascending id order, two space-separated
// floats (second- then third-eigenvector component), trailing newline on
// every line, written atomically so a failed run never leaves a partial
// file in place.
package edgeio
