package tokenizer

import (
	"log/slog"
	"strings"

	"github.com/srcmask/srcmask/registry"
)

// stripState is the stripper's single explicit state. The states are
// mutually exclusive: a quote character inside a comment is comment text,
// and a comment opener inside a literal is literal text.
type stripState uint8

const (
	stateNormal stripState = iota
	stateDoubleQuote
	stateSingleQuote
	stateLineComment
	stateBlockComment
)

// stripLiteralsAndComments removes string/character literals and line/block
// comments from raw source text in a single pass, before scanning.
//
// With keepLiterals set, each literal (surrounding quotes included) is
// registered under the Literal category and its identifier replaces it in
// the output; otherwise an empty pair of quotes marks where it stood. With
// keepComments set, comments are registered under Comment and replaced by
// their identifier; otherwise a line comment vanishes and a block comment
// leaves a single newline so line numbering survives.
//
// Unterminated quotes and block comments at end of input are dropped
// silently; an unterminated line comment is still flushed.
func stripLiteralsAndComments(input string, keepLiterals, keepComments bool, reg *registry.Registry, logger *slog.Logger) string {
	rs := []rune(input)

	var out strings.Builder
	out.Grow(len(input))
	var literal, comment []rune
	state := stateNormal

	for i := 0; i < len(rs); i++ {
		ch := rs[i]

		switch state {
		case stateNormal:
			switch {
			case ch == '"':
				state = stateDoubleQuote
			case ch == '\'':
				state = stateSingleQuote
			case ch == '/' && i+1 < len(rs) && rs[i+1] == '/':
				state = stateLineComment
				i++ // consume the second '/'
			case ch == '/' && i+1 < len(rs) && rs[i+1] == '*':
				state = stateBlockComment
				i++ // consume the '*'
			default:
				out.WriteRune(ch)
			}

		case stateDoubleQuote:
			if ch == '"' && !escapedAt(rs, i) {
				closeLiteral(&out, `"`+string(literal)+`"`, `""`, keepLiterals, reg, logger)
				literal = literal[:0]
				state = stateNormal
			} else {
				literal = append(literal, ch)
			}

		case stateSingleQuote:
			if ch == '\'' && !escapedAt(rs, i) {
				closeLiteral(&out, "'"+string(literal)+"'", "''", keepLiterals, reg, logger)
				literal = literal[:0]
				state = stateNormal
			} else {
				literal = append(literal, ch)
			}

		case stateLineComment:
			if ch == '\n' {
				if keepComments {
					key := reg.Add(registry.Comment, "//"+string(comment)+"\n")
					out.WriteString(key.String())
					out.WriteRune('\n')
					logger.Debug("comment registered", "key", key.String())
				}
				comment = comment[:0]
				state = stateNormal
			} else {
				comment = append(comment, ch)
			}

		case stateBlockComment:
			if ch == '*' && i+1 < len(rs) && rs[i+1] == '/' {
				if keepComments {
					key := reg.Add(registry.Comment, "/*"+string(comment)+"*/")
					out.WriteString(key.String())
					logger.Debug("comment registered", "key", key.String())
				} else {
					// Preserve line numbering for multi-line comments.
					out.WriteRune('\n')
				}
				comment = comment[:0]
				state = stateNormal
				i++ // consume the '/'
			} else {
				comment = append(comment, ch)
			}
		}
	}

	// A line comment that runs to end of input still flushes, even without
	// its terminating newline. Dangling quotes and block comments do not.
	if state == stateLineComment && keepComments {
		key := reg.Add(registry.Comment, "//"+string(comment))
		out.WriteString(key.String())
		logger.Debug("comment registered at EOF", "key", key.String())
	}

	return out.String()
}

// closeLiteral emits either the registered identifier of a closed literal
// or an empty quote pair that preserves the literal's presence.
func closeLiteral(out *strings.Builder, value, empty string, keep bool, reg *registry.Registry, logger *slog.Logger) {
	if keep {
		key := reg.Add(registry.Literal, value)
		out.WriteString(key.String())
		logger.Debug("literal registered", "key", key.String())
	} else {
		out.WriteString(empty)
	}
}

// escapedAt reports whether the quote at rs[i] is escaped: an odd number of
// consecutive backslashes immediately precedes it.
func escapedAt(rs []rune, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && rs[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 == 1
}
