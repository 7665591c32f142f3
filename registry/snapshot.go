package registry

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// snapshotVersion is bumped on breaking changes to the snapshot shape.
const snapshotVersion uint16 = 1

type tableSnapshot struct {
	Next    int            `cbor:"next"`
	Entries map[int]string `cbor:"entries"`
}

type registrySnapshot struct {
	Version uint16                       `cbor:"version"`
	Tables  [numCategories]tableSnapshot `cbor:"tables"`
}

// WriteSnapshot writes the registry's full state (all six tables and their
// counters) to w as deterministic CBOR. Encoding the same registry twice
// produces identical bytes.
func (r *Registry) WriteSnapshot(w io.Writer) error {
	snap := registrySnapshot{Version: snapshotVersion}
	for i, t := range r.tables {
		entries := make(map[int]string, t.Len())
		for _, seq := range t.Seqs() {
			v, _ := t.Value(seq)
			entries[seq] = v
		}
		snap.Tables[i] = tableSnapshot{Next: t.NextSeq(), Entries: entries}
	}

	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("create CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode registry snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write registry snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot restores a registry from a snapshot written by WriteSnapshot.
// Every key the snapshotted registry produced resolves in the restored one,
// and numbering continues after the highest assigned sequence.
func ReadSnapshot(rd io.Reader) (*Registry, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read registry snapshot: %w", err)
	}

	var snap registrySnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode registry snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported registry snapshot version %d", snap.Version)
	}

	r := New()
	for i := range r.tables {
		r.tables[i].restore(snap.Tables[i].Next, snap.Tables[i].Entries)
	}
	return r, nil
}
