package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string, opts ...Option) *Document {
	t.Helper()

	doc, err := Parse([]byte(src), "test.ini", opts...)
	require.NoError(t, err)
	require.NotNil(t, doc)

	return doc
}

const basicINI = `; top comment
key1 = foo
key2 = bar

[section1]
key1 = value1
key2: value2

[section2]
key1 = "quoted value"

[section1]
key3 = value3
`

func TestParseBasic(t *testing.T) {
	doc := mustParse(t, basicINI)

	t.Run("Counts", func(t *testing.T) {
		require.Equal(t, 3, doc.SectionCount())
		require.Equal(t, 6, doc.KeyCount())
	})

	t.Run("SectionNames", func(t *testing.T) {
		require.Equal(t, []string{"global", "section1", "section2"}, doc.SectionNames())
	})

	t.Run("FileOrder", func(t *testing.T) {
		require.Equal(t, []string{"key1", "key2", "key1", "key2", "key1", "key3"}, doc.KeyNames())
		require.Equal(t, []string{"foo", "bar", "value1", "value2", "quoted value", "value3"}, doc.KeyValues())
	})

	t.Run("GlobalKeys", func(t *testing.T) {
		v, err := doc.SectionValue("global", "key1")
		require.NoError(t, err)
		require.Equal(t, "foo", v)
	})

	t.Run("ColonAssignment", func(t *testing.T) {
		v, err := doc.SectionValue("section1", "key2")
		require.NoError(t, err)
		require.Equal(t, "value2", v)
	})

	t.Run("QuotedValue", func(t *testing.T) {
		v, err := doc.SectionValue("section2", "key1")
		require.NoError(t, err)
		require.Equal(t, "quoted value", v)
	})

	t.Run("ReopenedSectionRanges", func(t *testing.T) {
		ranges, err := doc.SectionRanges("section1")
		require.NoError(t, err)
		require.Equal(t, []Range{{Start: 2, End: 4}, {Start: 5, End: 6}}, ranges)

		names, err := doc.SectionKeyNames("section1")
		require.NoError(t, err)
		require.Equal(t, []string{"key1", "key2", "key3"}, names)
	})
}

func TestParseEmptyAndBlank(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		doc := mustParse(t, "")
		require.Equal(t, 1, doc.SectionCount())
		require.Equal(t, 0, doc.KeyCount())
		require.Equal(t, []string{"global"}, doc.SectionNames())
	})

	t.Run("CommentsOnly", func(t *testing.T) {
		doc := mustParse(t, "; nothing here\n# still nothing\n\n   \n")
		require.Equal(t, 1, doc.SectionCount())
		require.Equal(t, 0, doc.KeyCount())
	})

	t.Run("ValueAtEndOfBuffer", func(t *testing.T) {
		doc := mustParse(t, "a = 1\nlast = value")
		require.Equal(t, []string{"a", "last"}, doc.KeyNames())

		v, err := doc.Value("last")
		require.NoError(t, err)
		require.Equal(t, "value", v)
	})

	t.Run("CommentWithoutTrailingNewline", func(t *testing.T) {
		doc := mustParse(t, "key = 1 ; trailing comment")
		v, err := doc.Value("key")
		require.NoError(t, err)
		require.Equal(t, "1", v)
	})
}

func TestParseDuplicateKeys(t *testing.T) {
	const src = `key1 = one
key1 = two

[alpha]
key1 = first
key1 = second
`

	t.Run("FirstWinsDefault", func(t *testing.T) {
		doc := mustParse(t, src)
		require.Equal(t, 2, doc.KeyCount())

		v, err := doc.SectionValue("global", "key1")
		require.NoError(t, err)
		require.Equal(t, "one", v)

		v, err = doc.SectionValue("alpha", "key1")
		require.NoError(t, err)
		require.Equal(t, "first", v)
	})

	t.Run("Override", func(t *testing.T) {
		doc := mustParse(t, src, WithOverrideDuplicateKeys())
		require.Equal(t, 2, doc.KeyCount())

		v, err := doc.SectionValue("global", "key1")
		require.NoError(t, err)
		require.Equal(t, "two", v)

		v, err = doc.SectionValue("alpha", "key1")
		require.NoError(t, err)
		require.Equal(t, "second", v)
	})

	t.Run("DuplicateAcrossReopenedRanges", func(t *testing.T) {
		const reopened = `[s]
a = 1
[t]
b = 2
[s]
a = 3
`
		doc := mustParse(t, reopened)
		names, err := doc.SectionKeyNames("s")
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, names)

		v, err := doc.SectionValue("s", "a")
		require.NoError(t, err)
		require.Equal(t, "1", v)

		doc = mustParse(t, reopened, WithOverrideDuplicateKeys())
		v, err = doc.SectionValue("s", "a")
		require.NoError(t, err)
		require.Equal(t, "3", v)
	})

	t.Run("SameNameDifferentSectionsNotDuplicates", func(t *testing.T) {
		doc := mustParse(t, "[a]\nk = 1\n[b]\nk = 2\n")
		require.Equal(t, 2, doc.KeyCount())
	})
}

func TestParseBackToBackHeaders(t *testing.T) {
	doc := mustParse(t, "[s]\na = 1\n[s]\nb = 2\n")

	ranges, err := doc.SectionRanges("s")
	require.NoError(t, err)
	require.Equal(t, []Range{{Start: 0, End: 2}}, ranges)

	names, err := doc.SectionKeyNames("s")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
}

func TestParseUnterminatedHeader(t *testing.T) {
	doc := mustParse(t, "[section\nkey = value")

	// The header scan runs to the end of the buffer, so everything after
	// '[' becomes the section name and parsing stops there.
	require.Equal(t, 2, doc.SectionCount())
	require.Equal(t, 0, doc.KeyCount())
	require.Equal(t, "section\nkey = value", doc.SectionNames()[1])
}

func TestParseKeyWithoutAssignment(t *testing.T) {
	t.Run("StoredWithEmptyValue", func(t *testing.T) {
		doc := mustParse(t, "justakey")
		require.Equal(t, 1, doc.KeyCount())

		v, err := doc.Value("justakey")
		require.NoError(t, err)
		require.Equal(t, "", v)
	})

	t.Run("IgnoreEmptyValuesDrops", func(t *testing.T) {
		doc := mustParse(t, "justakey\nkept = 1\n", WithIgnoreEmptyValues())
		require.Equal(t, []string{"kept"}, doc.KeyNames())
	})

	t.Run("EmptyAssignedValueDropped", func(t *testing.T) {
		doc := mustParse(t, "empty =\nkept = 1\n", WithIgnoreEmptyValues())
		require.Equal(t, []string{"kept"}, doc.KeyNames())
	})

	t.Run("NameRunsToNextAssignment", func(t *testing.T) {
		// Without a delimiter on its own line, the name scan crosses the
		// newline and captures up to the next assignment character.
		doc := mustParse(t, "noassign\nkey = 1\n")
		require.Equal(t, []string{"noassign\nkey"}, doc.KeyNames())
		require.Equal(t, []string{"1"}, doc.KeyValues())
	})
}

func TestParseQuoting(t *testing.T) {
	t.Run("PreservesInteriorWhitespace", func(t *testing.T) {
		doc := mustParse(t, "pad = \"  padded  \"\n")
		v, err := doc.Value("pad")
		require.NoError(t, err)
		require.Equal(t, "  padded  ", v)
	})

	t.Run("UnterminatedQuoteTakesRemainder", func(t *testing.T) {
		doc := mustParse(t, "key = \"abc")
		v, err := doc.Value("key")
		require.NoError(t, err)
		require.Equal(t, "abc", v)
	})

	t.Run("QuotesDoNotProtectCommentMarker", func(t *testing.T) {
		// Comment stripping runs before structure, so a marker inside
		// quotes blanks the rest of the line, closing quote included, and
		// the now-unterminated quote takes the blanked remainder.
		doc := mustParse(t, "key = \"a;b\"\n")
		v, err := doc.Value("key")
		require.NoError(t, err)
		require.Equal(t, "a   \n", v)
	})

	t.Run("WithoutQuotes", func(t *testing.T) {
		doc := mustParse(t, "key = \"abc\"\n", WithoutQuotes())
		v, err := doc.Value("key")
		require.NoError(t, err)
		require.Equal(t, "\"abc\"", v)
	})
}

func TestParseAssignmentSelection(t *testing.T) {
	t.Run("EarliestDelimiterWins", func(t *testing.T) {
		doc := mustParse(t, "a:b=c\n")
		require.Equal(t, []string{"a"}, doc.KeyNames())
		require.Equal(t, []string{"b=c"}, doc.KeyValues())
	})

	t.Run("WithoutColonAssignment", func(t *testing.T) {
		doc := mustParse(t, "a:b=c\n", WithoutColonAssignment())
		require.Equal(t, []string{"a:b"}, doc.KeyNames())
		require.Equal(t, []string{"c"}, doc.KeyValues())
	})
}

func TestParseCommentOptions(t *testing.T) {
	t.Run("HashCommentDefault", func(t *testing.T) {
		doc := mustParse(t, "# comment\nkey = 1\n")
		require.Equal(t, []string{"key"}, doc.KeyNames())
	})

	t.Run("WithoutHashComments", func(t *testing.T) {
		doc := mustParse(t, "# not a comment\nkey = 1\n", WithoutHashComments())
		require.Equal(t, []string{"# not a comment\nkey"}, doc.KeyNames())
	})

	t.Run("LineStartOnly", func(t *testing.T) {
		doc := mustParse(t, "key = 5 ; trailing\n", WithCommentsAtLineStartOnly())
		v, err := doc.Value("key")
		require.NoError(t, err)
		require.Equal(t, "5 ; trailing", v)
	})

	t.Run("LineStartStillStripped", func(t *testing.T) {
		doc := mustParse(t, "; whole line\nkey = 5\n", WithCommentsAtLineStartOnly())
		require.Equal(t, []string{"key"}, doc.KeyNames())
	})
}

func TestParseCaseInsensitive(t *testing.T) {
	doc := mustParse(t, "[Graphics]\nWidth = 800\n", WithCaseInsensitive())

	v, err := doc.SectionValue("graphics", "width")
	require.NoError(t, err)
	require.Equal(t, "800", v)

	v, err = doc.SectionValue("GRAPHICS", "WIDTH")
	require.NoError(t, err)
	require.Equal(t, "800", v)

	t.Run("HeadersCollapse", func(t *testing.T) {
		d := mustParse(t, "[S]\na = 1\n[s]\nb = 2\n", WithCaseInsensitive())
		require.Equal(t, 2, d.SectionCount())
	})

	t.Run("SensitiveByDefault", func(t *testing.T) {
		d := mustParse(t, "[Graphics]\nWidth = 800\n")
		_, err := d.SectionValue("graphics", "Width")
		require.Error(t, err)
	})
}

func TestParseGlobalSectionName(t *testing.T) {
	t.Run("Renamed", func(t *testing.T) {
		doc := mustParse(t, "key = 1\n", WithGlobalSectionName("defaults"))
		require.Equal(t, []string{"defaults"}, doc.SectionNames())

		v, err := doc.SectionValue("defaults", "key")
		require.NoError(t, err)
		require.Equal(t, "1", v)

		_, err = doc.SectionValue("global", "key")
		require.Error(t, err)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		_, err := Parse([]byte("key = 1\n"), "test.ini", WithGlobalSectionName(""))
		require.Error(t, err)
	})

	t.Run("ExplicitHeaderJoinsGlobal", func(t *testing.T) {
		doc := mustParse(t, "a = 1\n[global]\nb = 2\n")
		names, err := doc.SectionKeyNames("global")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, names)
	})
}

func TestParseDefaultName(t *testing.T) {
	doc, err := Parse([]byte("[x\n"), "")
	require.NoError(t, err)
	require.Equal(t, "ini", doc.Name())
	require.NotEmpty(t, doc.Warnings())
	require.Equal(t, "ini", doc.Warnings()[0].Source)
}

func TestParseReturnedSlicesAreCopies(t *testing.T) {
	doc := mustParse(t, "a = 1\nb = 2\n")

	names := doc.KeyNames()
	names[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, doc.KeyNames())

	values := doc.KeyValues()
	values[1] = "mutated"
	require.Equal(t, []string{"1", "2"}, doc.KeyValues())
}
