// Package format defines the grammar constants and shared enums of the INI
// dialect inikit parses.
package format

type (
	DuplicateKeyPolicy uint8
	CompressionType    uint8
)

const (
	// PolicyFirstWins keeps the first occurrence of a duplicated key name and
	// silently drops later ones. This is the default policy.
	PolicyFirstWins DuplicateKeyPolicy = 0x1
	// PolicyOverride overwrites the stored value of the first occurrence in
	// place, keeping its index fixed.
	PolicyOverride DuplicateKeyPolicy = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed source.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Grammar bytes. CommentChar and AssignChar are always recognized; the Alt
// variants can be disabled per document.
const (
	CommentChar      = ';'
	CommentCharAlt   = '#'
	AssignChar       = '='
	AssignCharAlt    = ':'
	SectionOpenChar  = '['
	SectionCloseChar = ']'
	QuoteChar        = '"'
	KeyEndChar       = '\n'
)

// GlobalSectionName is the default name of the implicit section that holds
// keys appearing before the first header.
const GlobalSectionName = "global"

func (p DuplicateKeyPolicy) String() string {
	switch p {
	case PolicyFirstWins:
		return "FirstWins"
	case PolicyOverride:
		return "Override"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
