package document

import (
	"slices"

	"github.com/inikit/inikit/format"
	"github.com/inikit/inikit/internal/options"
)

// Parse parses data as INI text and returns the resulting Document. It
// takes ownership of data: comment spans are blanked in place and the
// buffer must not be touched by the caller afterwards. name is the display
// name used in diagnostics; the empty string defaults to "ini".
//
// Parsing itself never fails: structural anomalies are collected as
// Warnings and the parser always produces a best-effort Document. The only
// error Parse can return is an invalid option.
func Parse(data []byte, name string, opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if name == "" {
		name = noNameString
	}

	d := &Document{name: name, cfg: cfg, data: data}

	sectionEstimate, keyEstimate := stripComments(d.data, cfg)

	if cfg.WarningsEnabled() {
		d.scanForWarnings()
	}

	d.parse(sectionEstimate, keyEstimate)

	return d, nil
}

// parse is the structural pass: one forward walk over the comment-stripped
// buffer that tokenizes section headers and key lines and populates the
// section table and the flat key storage. Storage is pre-sized from the
// stripping pass estimates and clipped to the materialized counts at the
// end.
func (d *Document) parse(sectionEstimate, keyEstimate int) {
	buf := d.data

	d.sections = make([]section, 1, sectionEstimate)
	d.keyNames = make([]string, 0, keyEstimate)
	d.keyValues = make([]string, 0, keyEstimate)
	d.keyIDs = make([]uint64, 0, keyEstimate)

	global := d.cfg.GlobalSectionName()
	d.sections[0] = section{
		name:   global,
		id:     d.cfg.nameID(global),
		ranges: []Range{{Start: 0}},
	}

	open := 0 // index of the currently accumulating section
	i := 0

	for i < len(buf) {
		i = skipWhitespace(buf, i)
		if i >= len(buf) {
			break
		}

		if buf[i] == format.SectionOpenChar {
			i = d.parseSectionHeader(buf, i, &open)
			continue
		}

		i = d.parseKeyLine(buf, i, open)
	}

	// Close the last section's open range at the final key index.
	cur := &d.sections[open]
	cur.ranges[len(cur.ranges)-1].End = len(d.keyNames)

	// The estimates may exceed the materialized counts when duplicates or
	// empty values were dropped.
	d.sections = slices.Clip(d.sections)
	d.keyNames = slices.Clip(d.keyNames)
	d.keyValues = slices.Clip(d.keyValues)
	d.keyIDs = slices.Clip(d.keyIDs)
}

// parseSectionHeader consumes a header starting at buf[i] == '[' and
// returns the index to resume at. It closes the open section's current
// range, then matches the captured name against every section seen so far:
// a match reopens that section with a fresh range (unless it is already the
// open one), no match appends a brand-new section.
func (d *Document) parseSectionHeader(buf []byte, i int, open *int) int {
	keyIndex := len(d.keyNames)

	cur := &d.sections[*open]
	cur.ranges[len(cur.ranges)-1].End = keyIndex

	i++ // consume '['
	end := indexOfByte(buf, i, format.SectionCloseChar)
	name := trimmed(buf, i, end)
	id := d.cfg.nameID(name)

	match := -1
	for si := range d.sections {
		if d.sections[si].id == id && d.cfg.equalNames(d.sections[si].name, name) {
			match = si
			break
		}
	}

	switch {
	case match == *open:
		// Back-to-back identical header: the open range simply continues;
		// its end is rewritten when the section closes for real.
	case match >= 0:
		d.sections[match].ranges = append(d.sections[match].ranges, Range{Start: keyIndex})
		*open = match
	default:
		d.sections = append(d.sections, section{
			name:   name,
			id:     id,
			ranges: []Range{{Start: keyIndex}},
		})
		*open = len(d.sections) - 1
	}

	// If the header was never closed, end is len(buf) and parsing stops.
	// That is a warning-level condition, not an error.
	return end + 1
}

// parseKeyLine consumes one key line starting at buf[i] and returns the
// index to resume at. The name runs to the earliest assignment character in
// the remaining text ('=' wins position ties against ':'); the value runs
// to the end of the line, or between double quotes when quoting is enabled
// and a quote occurs before the newline.
func (d *Document) parseKeyLine(buf []byte, i int, open int) int {
	assign, found := d.findAssign(buf, i)
	name := trimmed(buf, i, assign)

	var value string
	if found {
		value, i = d.parseValue(buf, assign+1)
	} else {
		// No delimiter anywhere in the remainder: the name consumed it all
		// and the value is empty.
		value, i = "", len(buf)
	}

	if value == "" && d.cfg.IgnoreEmptyValues() {
		return i
	}

	id := d.cfg.nameID(name)
	if dup := d.findDuplicate(open, name, id); dup >= 0 {
		if d.cfg.DuplicateKeyPolicy() == format.PolicyOverride {
			d.keyValues[dup] = value
		}

		return i
	}

	d.keyNames = append(d.keyNames, name)
	d.keyValues = append(d.keyValues, value)
	d.keyIDs = append(d.keyIDs, id)

	return i
}

// findAssign locates the earliest assignment character at or after i.
// When both delimiters are enabled, the one occurring first wins, with '='
// breaking position ties. The boolean is false when neither occurs.
func (d *Document) findAssign(buf []byte, i int) (int, bool) {
	eq := indexOfByte(buf, i, format.AssignChar)
	if !d.cfg.ColonAssignmentEnabled() {
		return eq, eq < len(buf)
	}

	colon := indexOfByte(buf, i, format.AssignCharAlt)
	if eq <= colon {
		return eq, eq < len(buf)
	}

	return colon, true
}

// parseValue consumes a value starting at buf[i] (just past the assignment
// character) and returns it with the index to resume at.
//
// With quoting enabled and a double quote before the next newline, the
// value is everything between the first and second quote, verbatim, with no
// trimming and no escape handling. An unterminated quote takes the
// remainder of the buffer. Otherwise the value runs to the next newline
// and is trimmed of surrounding whitespace.
func (d *Document) parseValue(buf []byte, i int) (string, int) {
	if d.cfg.QuotesEnabled() {
		nl := indexOfByte(buf, i, format.KeyEndChar)
		q := indexOfByte(buf, i, format.QuoteChar)
		if q < nl {
			closing := indexOfByte(buf, q+1, format.QuoteChar)
			if closing >= len(buf) {
				return string(buf[q+1:]), len(buf)
			}

			return string(buf[q+1 : closing]), closing + 1
		}
	}

	nl := indexOfByte(buf, i, format.KeyEndChar)
	value := trimmed(buf, i, nl)

	return value, nl + 1
}

// findDuplicate scans the currently accumulating section for a key with the
// same name. Keys in other sections are never considered duplicates of each
// other. The open range's end is the current key index, not its stored End.
func (d *Document) findDuplicate(open int, name string, id uint64) int {
	sec := &d.sections[open]
	for ri, r := range sec.ranges {
		end := r.End
		if ri == len(sec.ranges)-1 {
			end = len(d.keyNames)
		}
		for j := r.Start; j < end; j++ {
			if d.keyIDs[j] == id && d.cfg.equalNames(d.keyNames[j], name) {
				return j
			}
		}
	}

	return -1
}
