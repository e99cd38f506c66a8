package document

import (
	"fmt"

	"github.com/inikit/inikit/errs"
	"github.com/inikit/inikit/format"
	"github.com/inikit/inikit/internal/hash"
	"github.com/inikit/inikit/internal/options"
)

// Config is the immutable parse configuration of a Document. It is built
// once from functional options and consulted through named predicates; the
// zero adjustments correspond to the dialect's defaults (both comment
// markers, both assignment delimiters, quotes honored, comments anywhere,
// case-sensitive matching, first-wins duplicate keys, errors and warnings
// enabled).
type Config struct {
	ignoreEmptyValues       bool
	overrideDuplicateKeys   bool
	disableQuotes           bool
	disableHashComments     bool
	disableColonAssignment  bool
	commentsAtLineStartOnly bool
	caseInsensitive         bool
	disableErrors           bool
	disableWarnings         bool
	globalName              string
}

func defaultConfig() Config {
	return Config{globalName: format.GlobalSectionName}
}

// Option represents a functional option for configuring a parse.
// This is a type alias for the generic Option interface specialized for *Config.
type Option = options.Option[*Config]

// WithIgnoreEmptyValues discards keys whose value is the empty string; they
// are neither stored nor counted.
func WithIgnoreEmptyValues() Option {
	return options.NoError(func(c *Config) { c.ignoreEmptyValues = true })
}

// WithOverrideDuplicateKeys switches the duplicate-key policy from
// first-wins to override: a recurring key name overwrites the stored value
// of its first occurrence in place.
func WithOverrideDuplicateKeys() Option {
	return options.NoError(func(c *Config) { c.overrideDuplicateKeys = true })
}

// WithoutQuotes disables double-quote handling; quote characters become part
// of the value.
func WithoutQuotes() Option {
	return options.NoError(func(c *Config) { c.disableQuotes = true })
}

// WithoutHashComments recognizes only ';' as a comment marker.
func WithoutHashComments() Option {
	return options.NoError(func(c *Config) { c.disableHashComments = true })
}

// WithoutColonAssignment recognizes only '=' as the key/value delimiter.
func WithoutColonAssignment() Option {
	return options.NoError(func(c *Config) { c.disableColonAssignment = true })
}

// WithCommentsAtLineStartOnly treats a comment marker as a comment only when
// it is the first character of a line.
func WithCommentsAtLineStartOnly() Option {
	return options.NoError(func(c *Config) { c.commentsAtLineStartOnly = true })
}

// WithCaseInsensitive makes section-name and key-name matching ignore ASCII
// letter case. The setting is global to the Document; it is never mixed
// per call.
func WithCaseInsensitive() Option {
	return options.NoError(func(c *Config) { c.caseInsensitive = true })
}

// WithoutErrorTracking turns the Document's error slot into a no-op sink.
// Operations still return errors; only HasError/LastError stop reflecting
// them. This trades introspection for not touching shared state on the
// lookup path.
func WithoutErrorTracking() Option {
	return options.NoError(func(c *Config) { c.disableErrors = true })
}

// WithoutWarnings skips the diagnostic scan entirely; the Document collects
// no warnings.
func WithoutWarnings() Option {
	return options.NoError(func(c *Config) { c.disableWarnings = true })
}

// WithGlobalSectionName overrides the name under which keys preceding the
// first header are reachable. The default is "global".
func WithGlobalSectionName(name string) Option {
	return options.New(func(c *Config) error {
		if name == "" {
			return fmt.Errorf("%w: global section name must not be empty", errs.ErrMissingParameter)
		}
		c.globalName = name

		return nil
	})
}

// Named predicates, consulted throughout the parser and lookup engine.

func (c Config) IgnoreEmptyValues() bool      { return c.ignoreEmptyValues }
func (c Config) QuotesEnabled() bool          { return !c.disableQuotes }
func (c Config) HashCommentsEnabled() bool    { return !c.disableHashComments }
func (c Config) ColonAssignmentEnabled() bool { return !c.disableColonAssignment }
func (c Config) CommentAnywhere() bool        { return !c.commentsAtLineStartOnly }
func (c Config) CaseSensitive() bool          { return !c.caseInsensitive }
func (c Config) ErrorsEnabled() bool          { return !c.disableErrors }
func (c Config) WarningsEnabled() bool        { return !c.disableWarnings }
func (c Config) GlobalSectionName() string    { return c.globalName }

// DuplicateKeyPolicy returns the policy applied when a key name recurs
// within one section's accumulation.
func (c Config) DuplicateKeyPolicy() format.DuplicateKeyPolicy {
	if c.overrideDuplicateKeys {
		return format.PolicyOverride
	}

	return format.PolicyFirstWins
}

func (c Config) isCommentChar(b byte) bool {
	return b == format.CommentChar || (!c.disableHashComments && b == format.CommentCharAlt)
}

func (c Config) isAssignChar(b byte) bool {
	return b == format.AssignChar || (!c.disableColonAssignment && b == format.AssignCharAlt)
}

// nameID computes the match ID of a section or key name under this config's
// case-sensitivity setting.
func (c Config) nameID(name string) uint64 {
	if c.caseInsensitive {
		return hash.FoldedID(name)
	}

	return hash.ID(name)
}

// equalNames confirms an ID hit with a direct comparison, so hash collisions
// can never produce a false match.
func (c Config) equalNames(a, b string) bool {
	if !c.caseInsensitive {
		return a == b
	}
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}

	return true
}
