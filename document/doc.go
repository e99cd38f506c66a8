// Package document implements the core INI parsing and lookup engine.
//
// A Document is produced by a single call to Parse and owns everything it
// refers to: the (comment-blanked) source buffer, the section table, the
// flat key storage, the warning list, and the current-error slot. Nothing a
// Document hands out borrows from the buffer; names and values are carved
// into independent strings during the parse pass.
//
// # Storage model
//
// Keys live in two parallel flat slices (names and values) in file order.
// A Section never stores keys directly; it holds an ordered list of
// half-open index Ranges into the flat slices, one Range per textual
// occurrence of its header. A section name that reappears later in the file
// reopens the same Section with an additional Range rather than creating a
// new one. Section 0 is always the global section, holding keys that
// precede the first header.
//
// Name matching is hash-gated: every stored section and key name carries an
// xxHash64 ID (ASCII-folded when the document is case-insensitive), so a
// lookup hashes its probe once and only falls back to a string comparison
// on an ID hit.
//
// # Error reporting
//
// Every operation that can fail returns an error and, unless error tracking
// is disabled, records it in the Document's single error slot: the slot is
// cleared on entry and set at most once, so HasError reflects the outcome
// of the most recent fallible call. Structural anomalies found while
// parsing are never errors; they are collected as Warnings and parsing
// always produces a best-effort Document.
//
// # Concurrency
//
// Parse runs to completion before the Document is visible, and a parsed
// Document is read-only except for the error slot, which is updated
// atomically. Lookups may therefore be issued concurrently; callers that
// need per-call failure information under concurrency should use the
// returned errors rather than HasError.
package document
