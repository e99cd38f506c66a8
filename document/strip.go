package document

import "github.com/inikit/inikit/format"

// stripComments blanks every comment span in buf in place, replacing the
// marker and everything up to (but excluding) the next newline with spaces.
// Under the line-start-only policy a marker counts as a comment only at the
// very start of the buffer or immediately after a newline.
//
// While scanning it counts section-open characters and assignment characters
// to pre-size the section and key storage for the structural pass. Both
// counts are over-estimates (a delimiter inside a value still counts);
// storage is trimmed after parsing. This phase cannot fail.
func stripComments(buf []byte, cfg Config) (sectionEstimate, keyEstimate int) {
	sectionEstimate = 1 // the global section always exists

	for i := 0; i < len(buf); i++ {
		if cfg.isCommentChar(buf[i]) &&
			(cfg.CommentAnywhere() || i == 0 || buf[i-1] == format.KeyEndChar) {
			for i < len(buf) && buf[i] != format.KeyEndChar {
				buf[i] = ' '
				i++
			}
			if i >= len(buf) {
				break
			}
		}

		if buf[i] == format.SectionOpenChar {
			sectionEstimate++
		} else if cfg.isAssignChar(buf[i]) {
			keyEstimate++
		}
	}

	return sectionEstimate, keyEstimate
}

// skipWhitespace returns the index of the first byte at or after i that is
// not whitespace. Whitespace is any byte <= space.
func skipWhitespace(buf []byte, i int) int {
	for i < len(buf) && buf[i] <= ' ' {
		i++
	}

	return i
}

// indexOfByte returns the absolute index of the first occurrence of c at or
// after i, or len(buf) if c does not occur.
func indexOfByte(buf []byte, i int, c byte) int {
	for i < len(buf) && buf[i] != c {
		i++
	}

	return i
}

// trimmed copies buf[start:end] into a string with surrounding whitespace
// (any byte <= space) removed.
func trimmed(buf []byte, start, end int) string {
	for start < end && buf[start] <= ' ' {
		start++
	}
	for end > start && buf[end-1] <= ' ' {
		end--
	}

	return string(buf[start:end])
}
