package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddRoutesByCategory(t *testing.T) {
	reg := New()

	lit := reg.Add(Literal, `"hi"`)
	kw := reg.Add(Keyword, "if")

	assert.Equal(t, Key{Category: Literal, Seq: 0}, lit)
	assert.Equal(t, Key{Category: Keyword, Seq: 0}, kw, "categories count independently")

	value, ok := reg.Value(lit)
	require.True(t, ok)
	assert.Equal(t, `"hi"`, value)
}

func TestRegistryKeyFor(t *testing.T) {
	reg := New()
	reg.Add(Object, "obj.call")

	key, ok := reg.KeyFor(Object, "obj.call")
	require.True(t, ok)
	assert.Equal(t, Key{Category: Object, Seq: 0}, key)

	_, ok = reg.KeyFor(Keyword, "obj.call")
	assert.False(t, ok, "lookup is category-scoped")
}

func TestRegistryClearAll(t *testing.T) {
	reg := New()
	for _, cat := range Categories() {
		reg.Add(cat, "v")
	}
	require.False(t, reg.IsEmpty())

	reg.Clear()

	assert.True(t, reg.IsEmpty())
	for _, cat := range Categories() {
		assert.Equal(t, Key{Category: cat, Seq: 0}, reg.Add(cat, "w"),
			"every counter restarts at 0")
	}
}

func TestRegistryEntriesOrdered(t *testing.T) {
	reg := New()
	reg.Add(Keyword, "if")
	reg.Add(Keyword, "else")
	reg.Add(Keyword, "while")

	entries := reg.Entries(Keyword)
	require.Len(t, entries, 3)
	assert.Equal(t, "if", entries[0].Value)
	assert.Equal(t, "else", entries[1].Value)
	assert.Equal(t, "while", entries[2].Value)
}

func TestRegistryResolve(t *testing.T) {
	reg := New()
	reg.Add(Primitive, "2.51")

	entry, ok := reg.Resolve(":p0")
	require.True(t, ok)
	assert.Equal(t, "2.51", entry.Value)
	assert.Equal(t, Primitive, entry.Key.Category)

	_, ok = reg.Resolve(":p1")
	assert.False(t, ok, "unassigned sequence must not resolve")
	_, ok = reg.Resolve("plain")
	assert.False(t, ok, "non-key text must not resolve")
}

func TestKeyTextForm(t *testing.T) {
	assert.Equal(t, ":l0", Key{Category: Literal, Seq: 0}.String())
	assert.Equal(t, ":d12", Key{Category: Delimiter, Seq: 12}.String())

	tests := []struct {
		text string
		want Key
		ok   bool
	}{
		{text: ":l0", want: Key{Category: Literal, Seq: 0}, ok: true},
		{text: ":p42", want: Key{Category: Primitive, Seq: 42}, ok: true},
		{text: ":o7", want: Key{Category: Object, Seq: 7}, ok: true},
		{text: ":c1", want: Key{Category: Comment, Seq: 1}, ok: true},
		{text: ":k3", want: Key{Category: Keyword, Seq: 3}, ok: true},
		{text: ":d9", want: Key{Category: Delimiter, Seq: 9}, ok: true},
		{text: "", ok: false},
		{text: ":l", ok: false},
		{text: ":x0", ok: false},
		{text: ":l-1", ok: false},
		{text: "l0", ok: false},
		{text: ":l0x", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.text)
		assert.Equal(t, tt.ok, ok, "ParseKey(%q)", tt.text)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseKey(%q)", tt.text)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	for _, cat := range Categories() {
		parsed, ok := ParseCategory(cat.String())
		require.True(t, ok, "category %s must round-trip", cat)
		assert.Equal(t, cat, parsed)
	}
	_, ok := ParseCategory("token")
	assert.False(t, ok)
}

func TestClosestValue(t *testing.T) {
	reg := New()
	reg.Add(Object, "deployProduction")
	reg.Add(Object, "tearDownFixture")

	entry, ok := reg.ClosestValue(Object, "deployprod")
	require.True(t, ok)
	assert.Equal(t, "deployProduction", entry.Value)

	_, ok = reg.ClosestValue(Keyword, "deployprod")
	assert.False(t, ok, "empty category has no match")
}
