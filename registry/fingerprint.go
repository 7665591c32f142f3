package registry

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprinter produces short keyed BLAKE2b fingerprints of stored values.
// Reports can show fingerprints instead of source text, so dumps of the same
// document stay comparable without revealing what was tokenized. The key is
// per-session: a different key yields different fingerprints, which prevents
// correlating values across unrelated runs.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter returns a Fingerprinter with a random 32-byte key.
func NewFingerprinter() (*Fingerprinter, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate fingerprint key: %w", err)
	}
	return &Fingerprinter{key: key}, nil
}

// NewFingerprinterWithKey returns a Fingerprinter using the given 32-byte
// key. Use this when fingerprints must be stable across runs.
func NewFingerprinterWithKey(key []byte) (*Fingerprinter, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("fingerprint key must be exactly 32 bytes, got %d", len(key))
	}
	keyCopy := make([]byte, 32)
	copy(keyCopy, key)
	return &Fingerprinter{key: keyCopy}, nil
}

// Fingerprint returns the masked form of value: a fixed-length digest that
// leaks neither the value nor its length.
func (f *Fingerprinter) Fingerprint(value string) string {
	hash, err := blake2b.New256(f.key)
	if err != nil {
		// Only reachable with an invalid key length, which the
		// constructors rule out.
		panic(fmt.Sprintf("blake2b.New256 failed: %v", err))
	}
	hash.Write([]byte(value))
	digest := hash.Sum(nil)

	encoded := base64.RawURLEncoding.EncodeToString(digest[:8])
	return fmt.Sprintf("<MASKED:%s>", encoded)
}
