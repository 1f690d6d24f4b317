package ir

import (
	"hash/fnv"
)

// NameHash is the hash of a node name. Lookups compare hashes, so
// callers looking up the same name repeatedly can hash it once.
type NameHash uint64

// NameHashNull is the hash of the empty name. No lookup matches it.
const NameHashNull NameHash = 0

// HashName returns the 64-bit FNV-1a hash of name, or NameHashNull for
// the empty name.
func HashName(name string) NameHash {
	if name == "" {
		return NameHashNull
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return NameHash(h.Sum64())
}
