package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/srcmask/srcmask/language"
	"github.com/srcmask/srcmask/registry"
	"github.com/srcmask/srcmask/report"
	"github.com/srcmask/srcmask/tokenizer"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "srcmask",
		Short: "Tokenize source code and map tokens to reversible identifiers",
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// tokenizeFlags is shared between tokenize and watch.
type tokenizeFlags struct {
	languageName string
	languageFile string
	withMapping  bool
	keepLiterals bool
	keepComments bool
	dumpTable    bool
	annotate     bool
	redact       bool
	saveTable    string
}

func (f *tokenizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.languageName, "language", "l", "java", "Built-in language definition (java, go)")
	cmd.Flags().StringVar(&f.languageFile, "language-file", "", "Path to a JSON language definition (overrides --language)")
	cmd.Flags().BoolVarP(&f.withMapping, "map", "m", false, "Replace tokens with category-scoped identifiers")
	cmd.Flags().BoolVar(&f.keepLiterals, "keep-literals", false, "Register literal text instead of blanking it (implies --map)")
	cmd.Flags().BoolVar(&f.keepComments, "keep-comments", false, "Register comment text instead of removing it (implies --map)")
	cmd.Flags().BoolVar(&f.dumpTable, "dump-table", false, "Print the registry's key/value tables after tokenizing")
	cmd.Flags().BoolVar(&f.annotate, "annotate", false, "Print an annotated per-token listing after tokenizing")
	cmd.Flags().BoolVar(&f.redact, "redact", false, "Show keyed fingerprints instead of stored values in dumps")
	cmd.Flags().StringVar(&f.saveTable, "save-table", "", "Write a registry snapshot to this path")
}

func (f *tokenizeFlags) spec() (*language.Spec, error) {
	if f.languageFile != "" {
		file, err := os.Open(f.languageFile)
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()
		return language.LoadDefinition(file)
	}

	switch f.languageName {
	case "java":
		return language.Java(), nil
	case "go":
		return language.Go(), nil
	default:
		return nil, fmt.Errorf("unknown language %q (built-ins: java, go)", f.languageName)
	}
}

func (f *tokenizeFlags) reportOptions() (report.Options, error) {
	opts := report.Options{Redact: f.redact}
	if f.redact {
		fp, err := registry.NewFingerprinter()
		if err != nil {
			return opts, err
		}
		opts.Fingerprinter = fp
	}
	return opts, nil
}

func newTokenizeCmd() *cobra.Command {
	var flags tokenizeFlags

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Tokenize a file (or stdin with \"-\")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}

			spec, err := flags.spec()
			if err != nil {
				return err
			}

			session := tokenizer.New(tokenizer.WithLanguage(spec))
			return runTokenize(cmd.OutOrStdout(), session, input, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runTokenize(out io.Writer, session *tokenizer.Tokenizer, input string, flags *tokenizeFlags) error {
	var tokens []string
	if flags.withMapping || flags.keepLiterals || flags.keepComments {
		mapped, err := session.TokenizeWithMapping(input, flags.keepLiterals, flags.keepComments)
		if err != nil {
			return err
		}
		tokens = mapped
	} else {
		tokens = session.Tokenize(input)
	}

	fmt.Fprintln(out, strings.Join(tokens, " "))

	opts, err := flags.reportOptions()
	if err != nil {
		return err
	}
	if flags.annotate {
		if listing := report.TokenStream(session.Registry(), tokens, opts); listing != "" {
			fmt.Fprintln(out, listing)
		}
	}
	if flags.dumpTable {
		if dump := report.Registry(session.Registry(), opts); dump != "" {
			fmt.Fprintln(out, dump)
		}
	}

	if flags.saveTable != "" {
		file, err := os.Create(flags.saveTable)
		if err != nil {
			return err
		}
		defer func() { _ = file.Close() }()
		if err := session.Registry().WriteSnapshot(file); err != nil {
			return err
		}
	}

	return nil
}

func newLookupCmd() *cobra.Command {
	var fuzzySearch bool

	cmd := &cobra.Command{
		Use:   "lookup <snapshot> <key-or-value>",
		Short: "Resolve an identifier (or find a value) in a saved registry snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			reg, err := registry.ReadSnapshot(file)
			if err != nil {
				return err
			}

			query := args[1]
			if entry, ok := reg.Resolve(query); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.Key.Category, entry.Key, entry.Value)
				return nil
			}

			// Not a key: search stored values across categories.
			for _, cat := range registry.Categories() {
				if key, ok := reg.KeyFor(cat, query); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", cat, key, query)
					return nil
				}
			}
			if fuzzySearch {
				for _, cat := range registry.Categories() {
					if entry, ok := reg.ClosestValue(cat, query); ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t(closest match)\n", cat, entry.Key, entry.Value)
						return nil
					}
				}
			}
			return fmt.Errorf("no entry for %q", query)
		},
	}

	cmd.Flags().BoolVar(&fuzzySearch, "fuzzy", false, "Fall back to fuzzy matching over stored values")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var flags tokenizeFlags

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-tokenize a file on every change",
		Long: "Watches a file and reprints its token stream whenever it is written.\n" +
			"The registry persists across changes, so identifiers stay stable for\n" +
			"values that were already seen.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if path == "-" {
				return fmt.Errorf("watch requires a file path, not stdin")
			}

			spec, err := flags.spec()
			if err != nil {
				return err
			}
			session := tokenizer.New(tokenizer.WithLanguage(spec))

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer func() { _ = watcher.Close() }()
			if err := watcher.Add(path); err != nil {
				return err
			}

			// Tokenize once up front, then on every write event.
			if err := tokenizeFile(cmd.OutOrStdout(), session, path, &flags); err != nil {
				return err
			}
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !event.Has(fsnotify.Write) {
						continue
					}
					if err := tokenizeFile(cmd.OutOrStdout(), session, path, &flags); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Watch error: %v\n", err)
				}
			}
		},
	}

	flags.register(cmd)
	return cmd
}

func tokenizeFile(out io.Writer, session *tokenizer.Tokenizer, path string, flags *tokenizeFlags) error {
	input, err := readInput(path)
	if err != nil {
		return err
	}
	return runTokenize(out, session, input, flags)
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
