package registry

// Entry pairs a key with its stored value, for dumps and search results.
type Entry struct {
	Key   Key
	Value string
}

// Registry owns one Table per category and routes category-scoped inserts
// and lookups. Its lifetime matches a tokenizer session: it accumulates
// mappings across inputs until explicitly cleared.
//
// A Registry is not safe for concurrent use; the dedup check-then-insert in
// Add must be atomic, so concurrent callers need external locking or
// independent registries.
type Registry struct {
	tables [numCategories]*Table[string]
}

// New returns an empty registry with all six category tables at sequence 0.
func New() *Registry {
	r := &Registry{}
	for i := range r.tables {
		r.tables[i] = NewTable[string]()
	}
	return r
}

// Table returns the underlying table for cat.
func (r *Registry) Table(cat Category) *Table[string] {
	return r.tables[cat]
}

// Add stores value in cat's table and returns its key. Equal values always
// map to the same key.
func (r *Registry) Add(cat Category, value string) Key {
	return Key{Category: cat, Seq: r.tables[cat].Add(value)}
}

// Value returns the value stored under k.
func (r *Registry) Value(k Key) (string, bool) {
	if !k.Category.Valid() {
		return "", false
	}
	return r.tables[k.Category].Value(k.Seq)
}

// KeyFor returns the key assigned to value in cat, if present.
func (r *Registry) KeyFor(cat Category, value string) (Key, bool) {
	seq, ok := r.tables[cat].Seq(value)
	return Key{Category: cat, Seq: seq}, ok
}

// Remove deletes the value stored under k without affecting cat's counter.
func (r *Registry) Remove(k Key) {
	if k.Category.Valid() {
		r.tables[k.Category].Remove(k.Seq)
	}
}

// Clear empties all six tables and resets their counters to 0.
func (r *Registry) Clear() {
	for _, t := range r.tables {
		t.Clear()
	}
}

// IsEmpty reports whether every category table is empty.
func (r *Registry) IsEmpty() bool {
	for _, t := range r.tables {
		if !t.IsEmpty() {
			return false
		}
	}
	return true
}

// Len returns the number of values stored in cat.
func (r *Registry) Len(cat Category) int {
	return r.tables[cat].Len()
}

// Entries returns cat's contents ordered by sequence.
func (r *Registry) Entries(cat Category) []Entry {
	t := r.tables[cat]
	seqs := t.Seqs()
	entries := make([]Entry, 0, len(seqs))
	for _, seq := range seqs {
		v, _ := t.Value(seq)
		entries = append(entries, Entry{Key: Key{Category: cat, Seq: seq}, Value: v})
	}
	return entries
}

// Resolve looks up the entry behind an identifier in its boundary text form
// (for example ":l0"), as emitted into mapped token streams.
func (r *Registry) Resolve(text string) (Entry, bool) {
	k, ok := ParseKey(text)
	if !ok {
		return Entry{}, false
	}
	v, ok := r.Value(k)
	if !ok {
		return Entry{}, false
	}
	return Entry{Key: k, Value: v}, true
}
