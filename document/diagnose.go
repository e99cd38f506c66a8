package document

import "github.com/inikit/inikit/format"

// Advisory texts match the original reader's wording so existing tooling
// that greps logs keeps working.
const (
	warnUnterminatedSection = "Newline found in section name. Did you forget to close the section name with ']'?"
	warnAssignInSection     = "'=' found in section name. Did you forget to close the section name with ']'?"
	warnOpenInKeyName       = "'[' found in key name"
	warnCloseInKeyName      = "']' found in key name"
	warnOpenInKeyValue      = "'[' found in key value"
	warnCloseInKeyValue     = "']' found in key value"
)

// scanForWarnings walks the comment-stripped buffer once, tracking 1-based
// line/column counters, and records a warning for each structurally
// suspicious character: a newline or assignment inside an open section
// header, and brackets inside key names or values. Advisory only; the
// structural parser runs regardless.
func (d *Document) scanForWarnings() {
	buf := d.data
	line, col := 1, 1
	i := 0

	advance := func() {
		if buf[i] == format.KeyEndChar {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}

	for i < len(buf) {
		for i < len(buf) && buf[i] <= ' ' {
			advance()
		}
		if i >= len(buf) {
			break
		}

		if buf[i] == format.SectionOpenChar {
			// Inside a section header until the closing bracket.
			for i < len(buf) && buf[i] != format.SectionCloseChar {
				if buf[i] == format.KeyEndChar {
					d.addWarning(line, col, warnUnterminatedSection)
				} else if d.cfg.isAssignChar(buf[i]) {
					d.addWarning(line, col, warnAssignInSection)
				}
				advance()
			}
			if i < len(buf) {
				advance()
			}

			continue
		}

		// Key name until the assignment character.
		for i < len(buf) && !d.cfg.isAssignChar(buf[i]) {
			if buf[i] == format.SectionOpenChar {
				d.addWarning(line, col, warnOpenInKeyName)
			} else if buf[i] == format.SectionCloseChar {
				d.addWarning(line, col, warnCloseInKeyName)
			}
			advance()
		}
		if i < len(buf) {
			advance()
		}

		// Key value until end of line.
		for i < len(buf) && buf[i] != format.KeyEndChar {
			if buf[i] == format.SectionOpenChar {
				d.addWarning(line, col, warnOpenInKeyValue)
			} else if buf[i] == format.SectionCloseChar {
				d.addWarning(line, col, warnCloseInKeyValue)
			}
			advance()
		}
		if i < len(buf) {
			advance()
		}
	}
}

func (d *Document) addWarning(line, col int, msg string) {
	d.warnings = append(d.warnings, Warning{
		Source:  d.name,
		Line:    line,
		Column:  col,
		Message: msg,
	})
}
