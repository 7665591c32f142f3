// Package tokenizer converts raw source text of a configurable language
// into a flat token sequence, and optionally replaces each token's text
// with a category-scoped identifier while the session's registry retains
// the reversible mapping back to the original text.
//
// The pipeline is: literal/comment stripping, delimiter-driven scanning,
// then (in identifier mode) four reassembly passes — primitives, objects,
// keywords, delimiters — each consulting the registry.
package tokenizer

import (
	"errors"
	"log/slog"
	"os"

	"github.com/srcmask/srcmask/language"
	"github.com/srcmask/srcmask/registry"
)

// ErrNoLanguage is returned by TokenizeWithMapping when the session has no
// language configured. It is the pipeline's only configuration error and is
// reported before any scanning begins.
var ErrNoLanguage = errors.New("tokenizer: no language configured")

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLanguage binds the language used for delimiter and keyword tests.
func WithLanguage(spec *language.Spec) Option {
	return func(t *Tokenizer) {
		t.spec = spec
	}
}

// WithLogger replaces the session's logger. By default a text logger writes
// to stderr, at debug level when SRCMASK_DEBUG is set.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tokenizer) {
		t.logger = logger
	}
}

// Tokenizer is a reusable tokenization session: one language binding and
// one identifier registry that accumulates across inputs until cleared.
//
// A session is single-threaded; concurrent tokenization needs independent
// sessions or external synchronization.
type Tokenizer struct {
	spec   *language.Spec
	reg    *registry.Registry
	logger *slog.Logger
}

// New creates a tokenization session with an empty registry.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		reg:    registry.New(),
		logger: defaultLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetLanguage rebinds the session's language. The registry is untouched.
func (t *Tokenizer) SetLanguage(spec *language.Spec) {
	t.spec = spec
}

// Language returns the session's language, which may be nil.
func (t *Tokenizer) Language() *language.Spec {
	return t.spec
}

// Registry returns the session's identifier registry, for reverse lookup of
// any identifier the session has emitted.
func (t *Tokenizer) Registry() *registry.Registry {
	return t.reg
}

// ClearRegistry resets all accumulated mappings and their counters. The
// language binding survives.
func (t *Tokenizer) ClearRegistry() {
	t.reg.Clear()
}

// Tokenize produces the plain token sequence of input: literals are reduced
// to empty quote pairs, comments are removed, spacing is dropped, and no
// identifier substitution happens. It needs only the language's delimiter
// sets; with no language bound the input comes back as a single token.
func (t *Tokenizer) Tokenize(input string) []string {
	stripped := stripLiteralsAndComments(input, false, false, t.reg, t.logger)
	tokens := scan(stripped, t.spec, t.logger)
	t.logger.Debug("tokenized input", "language", t.spec.Name(), "tokens", len(tokens))
	return tokens
}

// TokenizeWithMapping runs the full pipeline and returns the identifier
// sequence for input. Literal and comment text is registered only when the
// corresponding keep flag is set; primitives, objects, keywords, and
// delimiters are always registered and substituted.
func (t *Tokenizer) TokenizeWithMapping(input string, keepLiterals, keepComments bool) ([]string, error) {
	if t.spec == nil {
		return nil, ErrNoLanguage
	}

	stripped := stripLiteralsAndComments(input, keepLiterals, keepComments, t.reg, t.logger)
	tokens := scan(stripped, t.spec, t.logger)

	tokens = mergePrimitives(tokens, t.reg)
	tokens = mergeObjects(tokens, t.spec, t.reg)
	tokens = substituteKeywords(tokens, t.spec, t.reg)
	tokens = substituteDelimiters(tokens, t.spec, t.reg)

	t.logger.Debug("mapped input", "language", t.spec.Name(), "tokens", len(tokens))
	return tokens, nil
}

// defaultLogger builds the session logger: text to stderr, debug level when
// SRCMASK_DEBUG is set, timestamps and level labels stripped for readable
// trace output.
func defaultLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("SRCMASK_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
