package document

import (
	"fmt"
	"iter"
	"sync/atomic"
)

// noNameString is the display name used for diagnostics when the caller did
// not supply one.
const noNameString = "ini"

// Range is a half-open interval [Start, End) of indices into the flat key
// storage, denoting one contiguous run of keys that belonged to one textual
// occurrence of a section header.
type Range struct {
	Start int
	End   int
}

// Len returns the number of keys covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// section is a name plus the ordered list of ranges accumulated for it.
// Ranges are ordered by first appearance of the corresponding header.
type section struct {
	name   string
	id     uint64
	ranges []Range
}

// keyCount sums the keys covered by all ranges of the section.
func (s *section) keyCount() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}

	return n
}

// Warning describes a structurally suspicious but non-fatal pattern found by
// the diagnostic scan. Warnings never block parsing and never populate the
// error slot.
type Warning struct {
	// Source is the document's display name.
	Source string
	// Line and Column locate the suspicious character, both 1-based.
	Line   int
	Column int
	// Message is the advisory text.
	Message string
}

// String renders the warning in source:line:col form.
func (w Warning) String() string {
	return fmt.Sprintf("%s:%d:%d: warning: %s", w.Source, w.Line, w.Column, w.Message)
}

// Document is the queryable result of parsing one INI source. All child
// state lives inside the Document; nothing outlives it except the fresh
// slices returned by the bulk-retrieval operations, which are caller-owned.
type Document struct {
	name string
	cfg  Config

	// data is the owned source buffer with comment spans blanked in place.
	// Names and values are copied out of it during parsing; it is retained
	// only so the Document remains the single owner of everything it was
	// built from.
	data []byte

	// sections[0] is always the global section.
	sections []section

	// Flat parallel key storage in file order. keyIDs mirrors keyNames with
	// precomputed match IDs.
	keyNames  []string
	keyValues []string
	keyIDs    []uint64

	warnings []Warning

	// lastErr is the single current-error slot shared by all operations.
	lastErr atomic.Pointer[error]
}

// Name returns the display name used in diagnostics.
func (d *Document) Name() string {
	return d.name
}

// Config returns the immutable parse configuration.
func (d *Document) Config() Config {
	return d.cfg
}

// KeyCount returns the number of keys materialized by the parse.
func (d *Document) KeyCount() int {
	return len(d.keyNames)
}

// SectionCount returns the number of sections, including the global one.
func (d *Document) SectionCount() int {
	return len(d.sections)
}

// SectionNames returns the section names in order of first appearance,
// starting with the global section. The slice is freshly allocated.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.sections))
	for i := range d.sections {
		names[i] = d.sections[i].name
	}

	return names
}

// KeyNames returns every key name in file order. The slice is freshly
// allocated.
func (d *Document) KeyNames() []string {
	names := make([]string, len(d.keyNames))
	copy(names, d.keyNames)

	return names
}

// KeyValues returns every key value in file order. The slice is freshly
// allocated.
func (d *Document) KeyValues() []string {
	values := make([]string, len(d.keyValues))
	copy(values, d.keyValues)

	return values
}

// Warnings returns the warnings collected during parsing, in detection
// order. The slice is freshly allocated. It is empty when warnings are
// disabled.
func (d *Document) Warnings() []Warning {
	warnings := make([]Warning, len(d.warnings))
	copy(warnings, d.warnings)

	return warnings
}

// HasError reports whether the most recent fallible operation failed.
// Always false when error tracking is disabled.
func (d *Document) HasError() bool {
	return d.LastError() != nil
}

// LastError returns the error recorded by the most recent fallible
// operation, or nil on success. Always nil when error tracking is disabled;
// use the errors returned by the operations themselves in that case.
func (d *Document) LastError() error {
	p := d.lastErr.Load()
	if p == nil {
		return nil
	}

	return *p
}

// clearErr resets the error slot at the start of a fallible operation.
func (d *Document) clearErr() {
	if d.cfg.ErrorsEnabled() {
		d.lastErr.Store(nil)
	}
}

// setErr records err in the slot (unless tracking is disabled) and returns
// it unchanged, so call sites can `return zero, d.setErr(err)`.
func (d *Document) setErr(err error) error {
	if d.cfg.ErrorsEnabled() {
		d.lastErr.Store(&err)
	}

	return err
}

// All returns an iterator over the (name, value) pairs of the named section
// in range-then-index order. The iterator is empty if the section does not
// exist; unlike the copying enumerators it does not touch the error slot.
//
// Example:
//
//	for name, value := range doc.All("graphics") {
//	    fmt.Printf("%s=%s\n", name, value)
//	}
func (d *Document) All(sectionName string) iter.Seq2[string, string] {
	sec := d.lookupSection(sectionName)
	if sec == nil {
		return func(yield func(string, string) bool) {}
	}

	return func(yield func(string, string) bool) {
		for _, r := range sec.ranges {
			for i := r.Start; i < r.End; i++ {
				if !yield(d.keyNames[i], d.keyValues[i]) {
					return
				}
			}
		}
	}
}
