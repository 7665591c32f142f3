// Package registry implements the category-scoped identifier table: a
// deduplicating store that assigns stable, auto-incrementing keys to unique
// token values, one table per token category, with reverse lookup back to
// the original text.
package registry

import (
	"strconv"
	"strings"
)

// Category classifies a stored token value. The set is closed.
type Category uint8

const (
	Literal Category = iota
	Primitive
	Object
	Comment
	Keyword
	Delimiter

	numCategories
)

// categoryPrefixes are the display prefixes used when a Key is rendered as
// text. None is a substring of another, so ParseKey is unambiguous. Routing
// inside the registry never touches these; it uses the Category tag.
var categoryPrefixes = [numCategories]string{
	Literal:   ":l",
	Primitive: ":p",
	Object:    ":o",
	Comment:   ":c",
	Keyword:   ":k",
	Delimiter: ":d",
}

var categoryNames = [numCategories]string{
	Literal:   "literal",
	Primitive: "primitive",
	Object:    "object",
	Comment:   "comment",
	Keyword:   "keyword",
	Delimiter: "delimiter",
}

func (c Category) String() string {
	if c >= numCategories {
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the six defined categories.
func (c Category) Valid() bool {
	return c < numCategories
}

// Categories returns the six categories in their fixed order.
func Categories() []Category {
	return []Category{Literal, Primitive, Object, Comment, Keyword, Delimiter}
}

// ParseCategory resolves a category from its name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if categoryNames[c] == name {
			return c, true
		}
	}
	return 0, false
}

// Key identifies a stored value: a category tag plus the sequence number
// assigned by that category's table. The textual form (for example ":l0")
// exists only at the token-stream and report boundary.
type Key struct {
	Category Category
	Seq      int
}

// String renders the key in its boundary text form, prefix plus sequence.
func (k Key) String() string {
	return categoryPrefixes[k.Category] + strconv.Itoa(k.Seq)
}

// ParseKey parses the boundary text form of a key. It is the inverse of
// Key.String and the only place prefix matching happens.
func ParseKey(s string) (Key, bool) {
	for _, c := range Categories() {
		prefix := categoryPrefixes[c]
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		seq, err := strconv.Atoi(s[len(prefix):])
		if err != nil || seq < 0 {
			return Key{}, false
		}
		return Key{Category: c, Seq: seq}, true
	}
	return Key{}, false
}
