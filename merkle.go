// Package merkle generates inclusion proofs for leaves of a binary
// Merkle tree. The tree is never materialized: the leaf level is
// hashed, padded to a power of two, and folded upward one level at a
// time, recording the sibling digest of the target position at each
// level.
package merkle

import (
	"bytes"
	"errors"
	"hash"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// MaxHeight bounds the tree to 2^MaxHeight leaves.
const MaxHeight = 20

var (
	ErrNoLeaves         = errors.New("cannot generate a proof with no leaves")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrTooManyLeaves    = errors.New("too many leaves")
)

// Proof is the hash chain from a leaf to the root that proves the
// leaf is part of the tree. Path is ordered bottom-to-top and holds
// one sibling digest per tree level; the root itself is not included,
// a verifier recomputes it.
type Proof struct {
	Leaf  []byte
	Index int
	Path  [][]byte
}

// Prover generates and verifies inclusion proofs. It is safe for
// concurrent use.
type Prover struct {
	hasher *Hasher
}

// NewProver creates a Prover using the given hash function,
// e.g. sha256.New.
func NewProver(hashFunc func() hash.Hash) *Prover {
	return &Prover{hasher: NewHasher(hashFunc)}
}

// treeHeight returns ceil(log2(n)). Integer bit-length arithmetic so
// exact powers of two never round up.
func treeHeight(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// GenerateProof generates an inclusion proof for the leaf at the
// given index. The returned path has exactly ceil(log2(len(leaves)))
// entries.
func (p *Prover) GenerateProof(leaves [][]byte, index int) (*Proof, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	if index < 0 || index >= len(leaves) {
		return nil, ErrIndexOutOfBounds
	}
	height := treeHeight(len(leaves))
	if height >= MaxHeight {
		return nil, ErrTooManyLeaves
	}

	level := p.hashedLevel(leaves, height)

	path := make([][]byte, 0, height)
	levelPos := index
	for i := 0; i < height; i++ {
		var siblingPos int
		if levelPos%2 == 0 {
			siblingPos = levelPos + 1
		} else {
			siblingPos = levelPos - 1
		}
		path = append(path, level[siblingPos])

		// Fold the level pairwise into its own front half.
		for j := 0; j < len(level); j += 2 {
			level[j/2] = p.hasher.HashInternal(level[j], level[j+1])
		}
		level = level[:len(level)/2]
		levelPos /= 2
	}

	return &Proof{
		Leaf:  leaves[index],
		Index: index,
		Path:  path,
	}, nil
}

// GenerateProofs generates one inclusion proof per index,
// concurrently. Every proof only reads the shared leaf slice, so the
// calls need no coordination beyond the group.
func (p *Prover) GenerateProofs(leaves [][]byte, indices []int) ([]*Proof, error) {
	proofs := make([]*Proof, len(indices))

	var g errgroup.Group
	for i, index := range indices {
		i, index := i, index
		g.Go(func() error {
			proof, err := p.GenerateProof(leaves, index)
			if err != nil {
				return err
			}
			proofs[i] = proof
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return proofs, nil
}

// Root folds the hashed and padded leaf level all the way down to the
// root digest.
func (p *Prover) Root(leaves [][]byte) ([]byte, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	height := treeHeight(len(leaves))
	if height >= MaxHeight {
		return nil, ErrTooManyLeaves
	}

	level := p.hashedLevel(leaves, height)
	for len(level) > 1 {
		for i := 0; i < len(level); i += 2 {
			level[i/2] = p.hasher.HashInternal(level[i], level[i+1])
		}
		level = level[:len(level)/2]
	}

	return level[0], nil
}

// VerifyProof recomputes the root from the proof and returns true if
// it matches the given root.
func (p *Prover) VerifyProof(root []byte, proof *Proof) bool {
	currentHash := p.hasher.HashLeaf(proof.Leaf)

	// The index parity at each level determines whether the running
	// hash is the left or the right child.
	levelPos := proof.Index
	for _, siblingHash := range proof.Path {
		if levelPos%2 == 0 {
			currentHash = p.hasher.HashInternal(currentHash, siblingHash)
		} else {
			currentHash = p.hasher.HashInternal(siblingHash, currentHash)
		}
		levelPos /= 2
	}

	return bytes.Equal(currentHash, root)
}

// hashedLevel hashes every leaf and pads the level with zero digests
// up to 2^height.
func (p *Prover) hashedLevel(leaves [][]byte, height int) [][]byte {
	level := make([][]byte, 1<<height)
	for i, leaf := range leaves {
		level[i] = p.hasher.HashLeaf(leaf)
	}
	padDigest := p.hasher.PadDigest()
	for i := len(leaves); i < len(level); i++ {
		level[i] = padDigest
	}
	return level
}
