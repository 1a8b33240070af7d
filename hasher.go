package merkle

import (
	"crypto/sha256"
	"hash"
	"sync"
)

// Domain-separation tags. A leaf digest and an internal-node digest
// over the same bytes must never coincide, so each gets its own
// prefix before hashing. Changing these bytes changes every digest
// and invalidates existing proofs.
var (
	leafPrefix = []byte("leaf:")
	nodePrefix = []byte("node:")
)

// Hasher computes domain-separated digests for leaves and internal
// nodes of a Merkle tree. The zero value is not usable; create one
// with NewHasher.
type Hasher struct {
	pool sync.Pool
	size int
}

// NewHasher returns a Hasher backed by the given hash constructor,
// e.g. sha256.New.
func NewHasher(hashFunc func() hash.Hash) *Hasher {
	return &Hasher{
		pool: sync.Pool{
			New: func() interface{} {
				return hashFunc()
			},
		},
		size: hashFunc().Size(),
	}
}

// NewSHA256Hasher returns a Hasher using SHA-256, the default digest.
func NewSHA256Hasher() *Hasher {
	return NewHasher(sha256.New)
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int {
	return h.size
}

// PadDigest returns the all-zero digest used to pad a leaf level up
// to a power of two. Padding positions have no pre-image and are
// never valid proof targets.
func (h *Hasher) PadDigest() []byte {
	return make([]byte, h.size)
}

// HashLeaf hashes a leaf value.
func (h *Hasher) HashLeaf(data []byte) []byte {
	return h.sum(leafPrefix, data)
}

// HashInternal hashes an internal node from its two children.
// Order matters: HashInternal(a, b) != HashInternal(b, a).
func (h *Hasher) HashInternal(left, right []byte) []byte {
	return h.sum(nodePrefix, left, right)
}

func (h *Hasher) sum(parts ...[]byte) []byte {
	localHashFunc := h.pool.Get().(hash.Hash)
	for _, part := range parts {
		localHashFunc.Write(part)
	}
	digest := localHashFunc.Sum(nil)
	localHashFunc.Reset()
	h.pool.Put(localHashFunc)
	return digest
}
