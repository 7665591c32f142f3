// Package report renders human-readable views of a tokenizer session's
// identifier registry: whole-table dumps per category and per-token
// annotated listings. Formatting lives entirely here; the registry's tagged
// keys are only turned into text at this boundary.
package report

import (
	"fmt"
	"strings"

	"github.com/srcmask/srcmask/registry"
)

// Options controls how stored values are rendered.
type Options struct {
	// Redact replaces stored values with keyed fingerprints, so a dump can
	// be shared or diffed without revealing the tokenized source.
	Redact bool

	// Fingerprinter supplies the fingerprints for Redact mode. When nil,
	// redacted values render as a fixed mask.
	Fingerprinter *registry.Fingerprinter
}

func (o Options) render(value string) string {
	if !o.Redact {
		return value
	}
	if o.Fingerprinter == nil {
		return "<MASKED>"
	}
	return o.Fingerprinter.Fingerprint(value)
}

// Registry renders the full key→value mapping of every category, in the
// fixed category order. An empty registry renders as an empty string.
func Registry(reg *registry.Registry, opts Options) string {
	if reg.IsEmpty() {
		return ""
	}

	var b strings.Builder
	for i, cat := range registry.Categories() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "----------%s TOKEN TABLE----------\n", strings.ToUpper(cat.String()))
		for _, e := range reg.Entries(cat) {
			fmt.Fprintf(&b, "Key  %s\tValue  %s\n", e.Key, opts.render(e.Value))
		}
	}
	return strings.TrimSpace(b.String())
}

// TokenStream renders a mapped token sequence with one annotated line per
// identifier: its category, key, and stored value. Tokens that are not
// identifiers (nothing in the registry resolves them) are listed as plain
// tokens.
func TokenStream(reg *registry.Registry, tokens []string, opts Options) string {
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("----------TOKEN TABLE----------\n")
	for _, tok := range tokens {
		if e, ok := reg.Resolve(tok); ok {
			fmt.Fprintf(&b, "%-10s\tKey  %s\tValue  %s\n", title(e.Key.Category.String())+":", e.Key, opts.render(e.Value))
		} else {
			fmt.Fprintf(&b, "%-10s\tToken  %s\n", "Plain:", tok)
		}
	}
	return strings.TrimSpace(b.String())
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
