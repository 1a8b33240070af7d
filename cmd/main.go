package main

import (
	"crypto/sha256"
	"fmt"
	"os"

	merkle "github.com/estensen/merkleproof"
)

// File where the Merkle proof will be written.
const proofFile = "proof.txt"

func main() {
	// Generate 1000 leaves
	leaves := make([][]byte, 1000)
	for i := range leaves {
		leaves[i] = []byte(fmt.Sprintf("data item %d", i))
	}
	fmt.Println("Generated 1000 leaves for a Merkle tree of height 10.")

	prover := merkle.NewProver(sha256.New)

	// Generate proof for leaf #743
	pos := 743
	proof, err := prover.GenerateProof(leaves, pos)
	if err != nil {
		panic(err)
	}

	root, err := prover.Root(leaves)
	if err != nil {
		panic(err)
	}
	if !prover.VerifyProof(root, proof) {
		panic("proof does not verify against the root")
	}

	f, err := os.Create(proofFile)
	if err != nil {
		panic(err)
	}
	if err := merkle.WriteProof(f, proof); err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote a verified Merkle proof for leaf #%d to %s\n", pos, proofFile)
}
