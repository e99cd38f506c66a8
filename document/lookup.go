package document

import (
	"fmt"

	"github.com/inikit/inikit/errs"
	"github.com/inikit/inikit/format"
)

// lookupSection resolves a section by name, or nil if it does not exist.
// Candidates are gated on the precomputed ID and confirmed with a direct
// name comparison.
func (d *Document) lookupSection(name string) *section {
	id := d.cfg.nameID(name)
	for i := range d.sections {
		if d.sections[i].id == id && d.cfg.equalNames(d.sections[i].name, name) {
			return &d.sections[i]
		}
	}

	return nil
}

func (d *Document) findSection(name string) (*section, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: section name must not be empty", errs.ErrMissingParameter)
	}

	if sec := d.lookupSection(name); sec != nil {
		return sec, nil
	}

	return nil, fmt.Errorf("%w: section %q not found", errs.ErrSectionNotFound, name)
}

// SectionValue returns the raw value of keyName within sectionName. Ranges
// are visited in order of first appearance of the header, keys in index
// order within each range; the first match wins (under the override policy a
// recurring name was already collapsed into its first slot during parsing,
// so at most one match exists per section either way).
func (d *Document) SectionValue(sectionName, keyName string) (string, error) {
	d.clearErr()

	if keyName == "" {
		return "", d.setErr(fmt.Errorf("%w: key name must not be empty", errs.ErrMissingParameter))
	}

	sec, err := d.findSection(sectionName)
	if err != nil {
		return "", d.setErr(err)
	}

	id := d.cfg.nameID(keyName)
	for _, r := range sec.ranges {
		for i := r.Start; i < r.End; i++ {
			if d.keyIDs[i] == id && d.cfg.equalNames(d.keyNames[i], keyName) {
				return d.keyValues[i], nil
			}
		}
	}

	return "", d.setErr(fmt.Errorf("%w: key %q not found in section %q", errs.ErrKeyNotFound, keyName, sectionName))
}

// Value returns the raw value of keyName regardless of which section it
// lives in, scanning the flat storage in file order. Under the first-wins
// policy the first occurrence in the file is returned; under the override
// policy the last one is, matching the per-section overwrite semantics.
func (d *Document) Value(keyName string) (string, error) {
	d.clearErr()

	if keyName == "" {
		return "", d.setErr(fmt.Errorf("%w: key name must not be empty", errs.ErrMissingParameter))
	}

	id := d.cfg.nameID(keyName)
	found := -1
	for i := range d.keyNames {
		if d.keyIDs[i] == id && d.cfg.equalNames(d.keyNames[i], keyName) {
			if d.cfg.DuplicateKeyPolicy() == format.PolicyFirstWins {
				return d.keyValues[i], nil
			}
			found = i
		}
	}
	if found >= 0 {
		return d.keyValues[found], nil
	}

	return "", d.setErr(fmt.Errorf("%w: key %q not found", errs.ErrKeyNotFound, keyName))
}

// SectionRanges returns the storage ranges recorded for sectionName, one per
// textual occurrence of its header, in order of appearance. The slice is
// freshly allocated.
func (d *Document) SectionRanges(sectionName string) ([]Range, error) {
	d.clearErr()

	sec, err := d.findSection(sectionName)
	if err != nil {
		return nil, d.setErr(err)
	}

	ranges := make([]Range, len(sec.ranges))
	copy(ranges, sec.ranges)

	return ranges, nil
}

// SectionKeyCount returns the number of keys stored under sectionName across
// all of its ranges.
func (d *Document) SectionKeyCount(sectionName string) (int, error) {
	d.clearErr()

	sec, err := d.findSection(sectionName)
	if err != nil {
		return 0, d.setErr(err)
	}

	return sec.keyCount(), nil
}

// sectionKeySlice copies the section's slots out of src in range-then-index
// order.
func (d *Document) sectionKeySlice(sectionName string, src []string) ([]string, error) {
	d.clearErr()

	sec, err := d.findSection(sectionName)
	if err != nil {
		return nil, d.setErr(err)
	}

	out := make([]string, 0, sec.keyCount())
	for _, r := range sec.ranges {
		out = append(out, src[r.Start:r.End]...)
	}

	return out, nil
}

// SectionKeyNames returns the key names of sectionName in range-then-index
// order. The slice is freshly allocated and caller-owned.
func (d *Document) SectionKeyNames(sectionName string) ([]string, error) {
	return d.sectionKeySlice(sectionName, d.keyNames)
}

// SectionKeyValues returns the key values of sectionName in range-then-index
// order, parallel to SectionKeyNames. The slice is freshly allocated and
// caller-owned.
func (d *Document) SectionKeyValues(sectionName string) ([]string, error) {
	return d.sectionKeySlice(sectionName, d.keyValues)
}
