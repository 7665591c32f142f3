package tokenizer

import (
	"github.com/srcmask/srcmask/language"
	"github.com/srcmask/srcmask/registry"
)

// The reassembly passes run in a fixed order over the scanner's output:
// primitives first (raw digit shapes), then objects (identifier chains),
// then keyword and delimiter substitution. Order matters: the object pass
// must not see digit runs that belong to a decimal number, and the
// substitution passes must not touch tokens already replaced by keys
// (key text never matches a digit run, an identifier, a keyword, or a
// delimiter).

// isDigitRun reports whether tok is one or more ASCII digits.
func isDigitRun(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

// isIdentifier reports whether tok is a letter or underscore followed by
// letters, digits, or underscores.
func isIdentifier(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		ch := tok[i]
		letter := ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		if i == 0 {
			if !letter {
				return false
			}
			continue
		}
		if !letter && (ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

// mergePrimitives reassembles numeric literals that the scanner split
// around the decimal point. "2" "." "51" becomes one Primitive "2.51";
// the partial shapes "2." and ".51" are handled by un-consuming the token
// that failed to match. A lone "." with no adjacent digits passes through.
func mergePrimitives(toks []string, reg *registry.Registry) []string {
	out := make([]string, 0, len(toks))

	for i := 0; i < len(toks); {
		tok := toks[i]
		switch {
		case isDigitRun(tok):
			if i+1 < len(toks) && toks[i+1] == "." {
				if i+2 < len(toks) && isDigitRun(toks[i+2]) {
					out = append(out, reg.Add(registry.Primitive, tok+"."+toks[i+2]).String())
					i += 3
				} else {
					// No fractional digits; the dot still belongs to
					// the number.
					out = append(out, reg.Add(registry.Primitive, tok+".").String())
					i += 2
				}
			} else {
				out = append(out, reg.Add(registry.Primitive, tok).String())
				i++
			}
		case tok == ".":
			if i+1 < len(toks) && isDigitRun(toks[i+1]) {
				out = append(out, reg.Add(registry.Primitive, "."+toks[i+1]).String())
				i += 2
			} else {
				out = append(out, tok)
				i++
			}
		default:
			out = append(out, tok)
			i++
		}
	}

	return out
}

// mergeObjects reassembles dotted identifier chains that the scanner split
// around method-call delimiters. "obj" "." "call" becomes one Object
// "obj.call"; the chain extends while each link is a method-call delimiter
// followed by a qualifying identifier. A lone qualifying identifier is a
// single-element Object. Chains are unbounded.
func mergeObjects(toks []string, spec *language.Spec, reg *registry.Registry) []string {
	qualifies := func(tok string) bool {
		return isIdentifier(tok) && !spec.IsKeyword(tok) && !spec.IsDelimiter(tok)
	}

	out := make([]string, 0, len(toks))

	for i := 0; i < len(toks); {
		tok := toks[i]
		if !qualifies(tok) {
			out = append(out, tok)
			i++
			continue
		}

		chain := tok
		i++
		for i+1 < len(toks) && spec.IsMethodCall(toks[i]) && qualifies(toks[i+1]) {
			chain += toks[i] + toks[i+1]
			i += 2
		}
		out = append(out, reg.Add(registry.Object, chain).String())
	}

	return out
}

// substituteKeywords replaces every remaining keyword token with its
// Keyword-category identifier.
func substituteKeywords(toks []string, spec *language.Spec, reg *registry.Registry) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if spec.IsKeyword(tok) {
			out = append(out, reg.Add(registry.Keyword, tok).String())
		} else {
			out = append(out, tok)
		}
	}
	return out
}

// substituteDelimiters replaces every remaining delimiter token with its
// Delimiter-category identifier.
func substituteDelimiters(toks []string, spec *language.Spec, reg *registry.Registry) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if spec.IsDelimiter(tok) {
			out = append(out, reg.Add(registry.Delimiter, tok).String())
		} else {
			out = append(out, tok)
		}
	}
	return out
}
