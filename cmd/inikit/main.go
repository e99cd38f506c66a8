// Command inikit parses INI data and prints values, key names or section
// names. With no FILE argument it reads from standard input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inikit/inikit"
)

var (
	flagSection      string
	flagKey          string
	flagListSections bool
	flagListKeys     bool

	flagCaseInsensitive  bool
	flagOverride         bool
	flagIgnoreEmpty      bool
	flagNoQuotes         bool
	flagNoHashComments   bool
	flagNoColonAssign    bool
	flagCommentLineStart bool
	flagNoWarnings       bool
	flagGlobalName       string
)

var rootCmd = &cobra.Command{
	Use:   "inikit [flags] [FILE]",
	Short: "Parse INI data and print values from it",
	Long: "Inikit parses INI data and prints the value of the specified key\n" +
		"from the specified section. If FILE is not given, data is read from\n" +
		"standard input. Compressed snapshots (.zst, .zstd, .s2, .lz4) are\n" +
		"decompressed automatically.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagSection, "section", "s", "", "look only in the given section; if omitted, all sections are used")
	rootCmd.Flags().StringVarP(&flagKey, "key", "k", "", "find the value of this key only; if omitted, all values are listed")
	rootCmd.Flags().BoolVar(&flagListSections, "list-sections", false, "list section names")
	rootCmd.Flags().BoolVar(&flagListKeys, "list-keys", false, "list key names, scoped by --section if given")

	rootCmd.Flags().BoolVar(&flagCaseInsensitive, "case-insensitive", false, "match section and key names ignoring ASCII case")
	rootCmd.Flags().BoolVar(&flagOverride, "override-duplicate-keys", false, "later duplicate keys overwrite earlier ones")
	rootCmd.Flags().BoolVar(&flagIgnoreEmpty, "ignore-empty-values", false, "drop keys whose value is empty")
	rootCmd.Flags().BoolVar(&flagNoQuotes, "no-quotes", false, "treat double quotes as part of the value")
	rootCmd.Flags().BoolVar(&flagNoHashComments, "no-hash-comments", false, "recognize only ';' as a comment marker")
	rootCmd.Flags().BoolVar(&flagNoColonAssign, "no-colon-assignment", false, "recognize only '=' as the key/value delimiter")
	rootCmd.Flags().BoolVar(&flagCommentLineStart, "comments-at-line-start", false, "comments must start at the beginning of a line")
	rootCmd.Flags().BoolVar(&flagNoWarnings, "no-warnings", false, "suppress advisory warnings")
	rootCmd.Flags().StringVar(&flagGlobalName, "global-name", "", "name of the implicit section for keys before any header")
}

func parseOptions() []inikit.Option {
	var opts []inikit.Option
	if flagCaseInsensitive {
		opts = append(opts, inikit.WithCaseInsensitive())
	}
	if flagOverride {
		opts = append(opts, inikit.WithOverrideDuplicateKeys())
	}
	if flagIgnoreEmpty {
		opts = append(opts, inikit.WithIgnoreEmptyValues())
	}
	if flagNoQuotes {
		opts = append(opts, inikit.WithoutQuotes())
	}
	if flagNoHashComments {
		opts = append(opts, inikit.WithoutHashComments())
	}
	if flagNoColonAssign {
		opts = append(opts, inikit.WithoutColonAssignment())
	}
	if flagCommentLineStart {
		opts = append(opts, inikit.WithCommentsAtLineStartOnly())
	}
	if flagNoWarnings {
		opts = append(opts, inikit.WithoutWarnings())
	}
	if flagGlobalName != "" {
		opts = append(opts, inikit.WithGlobalSectionName(flagGlobalName))
	}

	return opts
}

func run(cmd *cobra.Command, args []string) error {
	var (
		doc *inikit.Document
		err error
	)

	if len(args) == 1 {
		doc, err = inikit.ParseFile(args[0], parseOptions()...)
	} else {
		doc, err = inikit.ParseReader(os.Stdin, "stdin", parseOptions()...)
	}
	if err != nil {
		return err
	}

	for _, w := range doc.Warnings() {
		fmt.Fprintln(os.Stderr, w)
	}

	switch {
	case flagListSections:
		global := doc.Config().GlobalSectionName()
		for _, name := range doc.SectionNames() {
			if name != global {
				fmt.Println(name)
			}
		}

	case flagListKeys:
		names := doc.KeyNames()
		if flagSection != "" {
			if names, err = doc.SectionKeyNames(flagSection); err != nil {
				return err
			}
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case flagKey != "":
		var value string
		if flagSection != "" {
			value, err = doc.SectionValue(flagSection, flagKey)
		} else {
			value, err = doc.Value(flagKey)
		}
		if err != nil {
			return err
		}
		fmt.Println(value)

	default:
		values := doc.KeyValues()
		if flagSection != "" {
			if values, err = doc.SectionKeyValues(flagSection); err != nil {
				return err
			}
		}
		for _, value := range values {
			fmt.Println(value)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
