package registry

import "sort"

// Table is a deduplicating store that assigns auto-incrementing sequence
// numbers to unique values. Inserting a value equal to one already stored
// returns the existing sequence; removal never reclaims a sequence.
//
// A value→sequence index is maintained alongside the forward map so reverse
// lookup is O(1) with identical equality semantics.
//
// Tables are not safe for concurrent use.
type Table[V comparable] struct {
	next   int
	values map[int]V
	index  map[V]int
}

// NewTable returns an empty table whose first assigned sequence is 0.
func NewTable[V comparable]() *Table[V] {
	return &Table[V]{
		values: make(map[int]V),
		index:  make(map[V]int),
	}
}

// Add stores value and returns its sequence number. If an equal value is
// already stored its existing sequence is returned and the table does not
// grow.
func (t *Table[V]) Add(value V) int {
	if seq, ok := t.index[value]; ok {
		return seq
	}
	seq := t.next
	t.next++
	t.values[seq] = value
	t.index[value] = seq
	return seq
}

// Value returns the value stored under seq.
func (t *Table[V]) Value(seq int) (V, bool) {
	v, ok := t.values[seq]
	return v, ok
}

// Seq returns the sequence assigned to value.
func (t *Table[V]) Seq(value V) (int, bool) {
	seq, ok := t.index[value]
	return seq, ok
}

// Remove deletes the value stored under seq. The sequence is not reused;
// the auto-increment counter is unaffected.
func (t *Table[V]) Remove(seq int) {
	v, ok := t.values[seq]
	if !ok {
		return
	}
	delete(t.values, seq)
	delete(t.index, v)
}

// Clear empties the table and resets the counter to 0.
func (t *Table[V]) Clear() {
	t.next = 0
	clear(t.values)
	clear(t.index)
}

// Len returns the number of stored values.
func (t *Table[V]) Len() int {
	return len(t.values)
}

// IsEmpty reports whether the table holds no values.
func (t *Table[V]) IsEmpty() bool {
	return len(t.values) == 0
}

// NextSeq returns the sequence the next unique value would receive.
func (t *Table[V]) NextSeq() int {
	return t.next
}

// Seqs returns all assigned sequences in ascending order.
func (t *Table[V]) Seqs() []int {
	seqs := make([]int, 0, len(t.values))
	for seq := range t.values {
		seqs = append(seqs, seq)
	}
	sort.Ints(seqs)
	return seqs
}

// Values returns all stored values ordered by sequence.
func (t *Table[V]) Values() []V {
	seqs := t.Seqs()
	values := make([]V, 0, len(seqs))
	for _, seq := range seqs {
		values = append(values, t.values[seq])
	}
	return values
}

// restore replaces the table contents from a snapshot. The counter is set
// to next, or past the highest stored sequence if next is too small.
func (t *Table[V]) restore(next int, values map[int]V) {
	t.Clear()
	for seq, v := range values {
		t.values[seq] = v
		t.index[v] = seq
		if seq >= next {
			next = seq + 1
		}
	}
	t.next = next
}
