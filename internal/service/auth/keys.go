package auth

import (
	"crypto/subtle"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/config"
)

// Identity is the user a successful API-key exchange authenticates.
type Identity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// KeyDirectory resolves opaque API keys to identities. It abstracts the
// flat key table so token issuance never depends on how identities are
// actually stored; swapping in a real user store means implementing
// this one method.
type KeyDirectory interface {
	// Lookup returns the identity the key authenticates, or false when
	// the key is unknown.
	Lookup(apiKey string) (Identity, bool)
}

// StaticKeyDirectory is a KeyDirectory backed by a fixed in-memory
// table, populated from configuration at startup. It is immutable after
// construction and therefore safe for concurrent use.
type StaticKeyDirectory struct {
	keys map[string]Identity
}

// Ensure StaticKeyDirectory implements KeyDirectory interface
var _ KeyDirectory = (*StaticKeyDirectory)(nil)

// NewStaticKeyDirectory builds a directory from the configured key table.
func NewStaticKeyDirectory(keys map[string]config.APIKeyRef) *StaticKeyDirectory {
	table := make(map[string]Identity, len(keys))
	for key, ref := range keys {
		table[key] = Identity{ID: ref.UserID, Name: ref.Name}
	}
	return &StaticKeyDirectory{keys: table}
}

// Lookup implements KeyDirectory. Every stored key is compared in
// constant time so the scan cost does not depend on where, or whether,
// a match occurs.
func (d *StaticKeyDirectory) Lookup(apiKey string) (Identity, bool) {
	var (
		found    bool
		identity Identity
	)
	for key, id := range d.keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			found = true
			identity = id
		}
	}
	return identity, found
}
