// Package language defines the per-language configuration consumed by the
// tokenizer: the keyword set, the delimiter set, and the two delimiter
// subsets (space delimiters and method-call delimiters).
//
// A Spec is immutable once built. Construct one with a Builder, load one
// from a JSON definition with LoadDefinition, or use a built-in (Java, Go).
// There is no process-wide registry of languages; callers own their specs
// and pass them into tokenizer sessions explicitly.
package language

// Spec is an immutable language configuration.
//
// All membership tests are safe on a nil receiver and report false; the
// lookahead bound of a nil or empty spec is zero. This lets the plain
// tokenization path run without a configured language.
type Spec struct {
	name        string
	keywords    map[string]struct{}
	delimiters  map[string]struct{}
	spaceDelims map[string]struct{}
	methodCalls map[string]struct{}
	lookahead   int
}

// Name returns the language name, or "" for a nil spec.
func (s *Spec) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// IsKeyword reports whether tok is a reserved keyword.
func (s *Spec) IsKeyword(tok string) bool {
	if s == nil {
		return false
	}
	_, ok := s.keywords[tok]
	return ok
}

// IsDelimiter reports whether tok is a delimiter.
func (s *Spec) IsDelimiter(tok string) bool {
	if s == nil {
		return false
	}
	_, ok := s.delimiters[tok]
	return ok
}

// IsSpaceDelimiter reports whether tok is a spacing delimiter. Spacing
// delimiters end the preceding token but are never emitted as tokens.
func (s *Spec) IsSpaceDelimiter(tok string) bool {
	if s == nil {
		return false
	}
	_, ok := s.spaceDelims[tok]
	return ok
}

// IsMethodCall reports whether tok is a method-call delimiter, eligible to
// chain identifier tokens into a single object token.
func (s *Spec) IsMethodCall(tok string) bool {
	if s == nil {
		return false
	}
	_, ok := s.methodCalls[tok]
	return ok
}

// LookaheadBound returns the number of extra characters the scanner must
// read past a matched single-character delimiter to find the longest
// possible delimiter: the longest delimiter length (in runes) minus one.
func (s *Spec) LookaheadBound() int {
	if s == nil {
		return 0
	}
	return s.lookahead
}

// Builder accumulates a language definition and produces an immutable Spec.
//
// Space delimiters and method-call delimiters are automatically members of
// the delimiter set, so the subset invariant holds by construction.
type Builder struct {
	name        string
	keywords    map[string]struct{}
	delimiters  map[string]struct{}
	spaceDelims map[string]struct{}
	methodCalls map[string]struct{}
}

// NewBuilder returns a Builder for a language with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:        name,
		keywords:    make(map[string]struct{}),
		delimiters:  make(map[string]struct{}),
		spaceDelims: make(map[string]struct{}),
		methodCalls: make(map[string]struct{}),
	}
}

// Keywords adds reserved keywords.
func (b *Builder) Keywords(words ...string) *Builder {
	for _, w := range words {
		b.keywords[w] = struct{}{}
	}
	return b
}

// Delimiters adds delimiters.
func (b *Builder) Delimiters(delims ...string) *Builder {
	for _, d := range delims {
		b.delimiters[d] = struct{}{}
	}
	return b
}

// SpaceDelimiters adds spacing delimiters. Each one is also added to the
// delimiter set.
func (b *Builder) SpaceDelimiters(delims ...string) *Builder {
	for _, d := range delims {
		b.delimiters[d] = struct{}{}
		b.spaceDelims[d] = struct{}{}
	}
	return b
}

// MethodCallDelimiters adds method-call delimiters. Each one is also added
// to the delimiter set.
func (b *Builder) MethodCallDelimiters(delims ...string) *Builder {
	for _, d := range delims {
		b.delimiters[d] = struct{}{}
		b.methodCalls[d] = struct{}{}
	}
	return b
}

// Build produces the immutable Spec. The lookahead bound is precomputed
// from the longest delimiter. The Builder must not be reused afterwards.
func (b *Builder) Build() *Spec {
	lookahead := 0
	for d := range b.delimiters {
		if n := len([]rune(d)); n-1 > lookahead {
			lookahead = n - 1
		}
	}
	return &Spec{
		name:        b.name,
		keywords:    b.keywords,
		delimiters:  b.delimiters,
		spaceDelims: b.spaceDelims,
		methodCalls: b.methodCalls,
		lookahead:   lookahead,
	}
}
