package tokenizer

import (
	"log/slog"

	"github.com/srcmask/srcmask/language"
)

// scan splits stripped text into an ordered token list. Non-delimiter runs
// accumulate into buffer tokens; delimiters are resolved greedily to the
// longest match the language knows. Space delimiters flush the pending
// buffer but are never emitted themselves.
func scan(input string, spec *language.Spec, logger *slog.Logger) []string {
	rs := []rune(input)
	tokens := make([]string, 0, len(rs)/4)
	var buf []rune

	flush := func(delim string) {
		if len(buf) > 0 {
			tokens = append(tokens, string(buf))
			buf = buf[:0]
		}
		if !spec.IsSpaceDelimiter(delim) {
			tokens = append(tokens, delim)
		}
	}

	for i := 0; i < len(rs); {
		ch := rs[i]
		if !spec.IsDelimiter(string(ch)) {
			buf = append(buf, ch)
			i++
			continue
		}

		// Greedy resolution: extend the candidate to the lookahead bound,
		// then shrink from the end until it matches. The single leading
		// character is already a delimiter, so length 1 always terminates
		// the backtracking.
		n := spec.LookaheadBound() + 1
		if rem := len(rs) - i; n > rem {
			n = rem
		}
		for ; n > 1; n-- {
			if spec.IsDelimiter(string(rs[i : i+n])) {
				break
			}
		}
		delim := string(rs[i : i+n])
		logger.Debug("delimiter resolved", "delimiter", delim, "length", n)
		flush(delim)
		i += n
	}

	// End of input acts as a final spacing delimiter: it flushes the
	// pending buffer without emitting anything itself.
	if len(buf) > 0 {
		tokens = append(tokens, string(buf))
	}

	return tokens
}
