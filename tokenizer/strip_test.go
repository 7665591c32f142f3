package tokenizer

import (
	"testing"

	"github.com/srcmask/srcmask/registry"
)

// ============================================================================
// Literal stripping
// ============================================================================

func TestStripLiteralsRemoved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double_quoted_literal_blanked",
			input: `x = "hello";`,
			want:  `x = "";`,
		},
		{
			name:  "single_quoted_literal_blanked",
			input: `c = 'a';`,
			want:  `c = '';`,
		},
		{
			name:  "adjacent_literals_stay_separate",
			input: `"a""b"`,
			want:  `""""`,
		},
		{
			name:  "single_quote_inside_double_quoted_literal",
			input: `"it's"`,
			want:  `""`,
		},
		{
			name:  "comment_opener_inside_literal_is_text",
			input: `"http://x"`,
			want:  `""`,
		},
		{
			name:  "unterminated_quote_dropped",
			input: `x = "abc`,
			want:  `x = `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			got := stripLiteralsAndComments(tt.input, false, false, reg, testLogger())
			if got != tt.want {
				t.Errorf("strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !reg.IsEmpty() {
				t.Errorf("registry written to with keep flags off")
			}
		})
	}
}

func TestStripLiteralsKept(t *testing.T) {
	reg := registry.New()
	got := stripLiteralsAndComments(`s = "hi";`, true, false, reg, testLogger())

	if got != `s = :l0;` {
		t.Errorf("stripped output = %q, want %q", got, `s = :l0;`)
	}
	value, ok := reg.Value(registry.Key{Category: registry.Literal, Seq: 0})
	if !ok {
		t.Fatal("literal :l0 not registered")
	}
	if value != `"hi"` {
		t.Errorf("literal value = %q, want %q (quotes included)", value, `"hi"`)
	}
}

func TestStripEscapedQuote(t *testing.T) {
	// One literal spanning both quote characters, not two adjacent ones.
	reg := registry.New()
	got := stripLiteralsAndComments(`"a\"b"`, true, false, reg, testLogger())

	if got != ":l0" {
		t.Errorf("stripped output = %q, want %q", got, ":l0")
	}
	value, _ := reg.Value(registry.Key{Category: registry.Literal, Seq: 0})
	if value != `"a\"b"` {
		t.Errorf("literal value = %q, want %q", value, `"a\"b"`)
	}
}

func TestStripEscapedBackslashClosesLiteral(t *testing.T) {
	// An even backslash count means the quote is not escaped.
	reg := registry.New()
	got := stripLiteralsAndComments(`"a\\" x`, true, false, reg, testLogger())

	if got != ":l0 x" {
		t.Errorf("stripped output = %q, want %q", got, ":l0 x")
	}
	value, _ := reg.Value(registry.Key{Category: registry.Literal, Seq: 0})
	if value != `"a\\"` {
		t.Errorf("literal value = %q, want %q", value, `"a\\"`)
	}
}

// ============================================================================
// Comment stripping
// ============================================================================

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "line_comment_removed",
			input: "a // trailing\nb",
			want:  "a b",
		},
		{
			name:  "line_comment_at_eof_removed",
			input: "a // trailing",
			want:  "a ",
		},
		{
			name:  "block_comment_leaves_newline",
			input: "a/* x */b",
			want:  "a\nb",
		},
		{
			name:  "division_slash_is_not_a_comment",
			input: "a/b",
			want:  "a/b",
		},
		{
			name:  "star_inside_block_comment",
			input: "a/* x*y */b",
			want:  "a\nb",
		},
		{
			name:  "quote_inside_comment_is_text",
			input: "a// \"s\"\nb",
			want:  "a b",
		},
		{
			name:  "unterminated_block_comment_dropped",
			input: "a/* x",
			want:  "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			got := stripLiteralsAndComments(tt.input, false, false, reg, testLogger())
			if got != tt.want {
				t.Errorf("strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripCommentsKept(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOut   string
		wantValue string
	}{
		{
			name:      "line_comment_keeps_newline_delimiter",
			input:     "// note\nx",
			wantOut:   ":c0\nx",
			wantValue: "// note\n",
		},
		{
			name:      "line_comment_at_eof_still_flushes",
			input:     "x // note",
			wantOut:   "x :c0",
			wantValue: "// note",
		},
		{
			name:      "block_comment_keeps_delimiters",
			input:     "a/* note */b",
			wantOut:   "a:c0b",
			wantValue: "/* note */",
		},
		{
			name:      "star_preserved_in_comment_text",
			input:     "/* a*b */",
			wantOut:   ":c0",
			wantValue: "/* a*b */",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			got := stripLiteralsAndComments(tt.input, false, true, reg, testLogger())
			if got != tt.wantOut {
				t.Errorf("strip(%q) = %q, want %q", tt.input, got, tt.wantOut)
			}
			value, ok := reg.Value(registry.Key{Category: registry.Comment, Seq: 0})
			if !ok {
				t.Fatal("comment :c0 not registered")
			}
			if value != tt.wantValue {
				t.Errorf("comment value = %q, want %q", value, tt.wantValue)
			}
		})
	}
}

func TestStripDedupAcrossOccurrences(t *testing.T) {
	reg := registry.New()
	got := stripLiteralsAndComments(`"x" + "x"`, true, false, reg, testLogger())

	if got != ":l0 + :l0" {
		t.Errorf("stripped output = %q, want %q", got, ":l0 + :l0")
	}
	if n := reg.Len(registry.Literal); n != 1 {
		t.Errorf("literal table size = %d, want 1", n)
	}
}
