// Package inikit provides a fast, forgiving INI reader with hash-based
// lookups and a queryable document model.
//
// Inikit parses a whole INI source in a few linear passes into flat,
// columnar storage: one section table and parallel key-name/key-value
// arrays, with each section holding index ranges into them. Sections may be
// reopened later in the file and keep accumulating keys; keys appearing
// before any section header live in the implicit "global" section.
//
// # Core Features
//
//   - Hash-gated name matching (64-bit xxHash64) for cheap lookups
//   - Reopenable sections tracked as index ranges over flat key storage
//   - First-wins or override duplicate-key policies
//   - Typed accessors (int64, uint64, float64, bool, CSV) with sentinel errors
//   - Advisory warnings with line/column positions, never fatal
//   - Transparent zstd/s2/lz4 snapshot decompression by file extension
//
// # Basic Usage
//
// Parsing and querying a file:
//
//	import "github.com/inikit/inikit"
//
//	doc, err := inikit.ParseFile("app.ini")
//	if err != nil {
//	    return err
//	}
//
//	host, _ := doc.SectionValue("server", "host")
//	port, _ := doc.SectionInt64("server", "port")
//
//	for name, value := range doc.All("server") {
//	    fmt.Printf("%s=%s\n", name, value)
//	}
//
// Dialect adjustments are functional options:
//
//	doc, err := inikit.ParseString(src, "inline",
//	    inikit.WithCaseInsensitive(),
//	    inikit.WithOverrideDuplicateKeys(),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the document
// and source packages. For fine-grained control (parsing pre-loaded buffers
// you own, picking codecs explicitly), use those packages directly.
package inikit

import (
	"io"

	"github.com/inikit/inikit/document"
	"github.com/inikit/inikit/source"
)

// Document is the queryable result of a parse. See the document package for
// the full API.
type Document = document.Document

// Range is a half-open index interval into a Document's flat key storage.
type Range = document.Range

// Warning is an advisory diagnostic with a 1-based source position.
type Warning = document.Warning

// Option adjusts the parse dialect.
type Option = document.Option

// Dialect options, re-exported so common use never imports the document
// package directly.
var (
	WithIgnoreEmptyValues       = document.WithIgnoreEmptyValues
	WithOverrideDuplicateKeys   = document.WithOverrideDuplicateKeys
	WithoutQuotes               = document.WithoutQuotes
	WithoutHashComments         = document.WithoutHashComments
	WithoutColonAssignment      = document.WithoutColonAssignment
	WithCommentsAtLineStartOnly = document.WithCommentsAtLineStartOnly
	WithCaseInsensitive         = document.WithCaseInsensitive
	WithoutErrorTracking        = document.WithoutErrorTracking
	WithoutWarnings             = document.WithoutWarnings
	WithGlobalSectionName       = document.WithGlobalSectionName
)

// ParseBytes parses an INI source held in data. The Document takes ownership
// of data; the caller must not reuse the slice. name labels diagnostics and
// may be empty.
func ParseBytes(data []byte, name string, opts ...Option) (*Document, error) {
	return document.Parse(data, name, opts...)
}

// ParseString parses an INI source held in a string.
func ParseString(src string, name string, opts ...Option) (*Document, error) {
	return document.Parse([]byte(src), name, opts...)
}

// ParseFile loads and parses the file at path, transparently decompressing
// snapshot files by extension (.zst, .zstd, .s2, .lz4). The file's base name
// becomes the Document's diagnostic name.
func ParseFile(path string, opts ...Option) (*Document, error) {
	data, name, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return document.Parse(data, name, opts...)
}

// ParseReader drains r and parses its contents. name labels diagnostics.
func ParseReader(r io.Reader, name string, opts ...Option) (*Document, error) {
	data, name, err := source.ReadAll(r, name)
	if err != nil {
		return nil, err
	}

	return document.Parse(data, name, opts...)
}
