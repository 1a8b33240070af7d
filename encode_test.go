package merkle

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProof(t *testing.T) {
	t.Parallel()

	prover := NewProver(sha256.New)
	leaves := makeLeaves(5)

	proof, err := prover.GenerateProof(leaves, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProof(&buf, proof))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+len(proof.Path))

	assert.Equal(t, "leaf position: 2", lines[0])
	assert.Equal(t, `leaf value: "data item 2"`, lines[1])
	assert.Equal(t, "Hash values in proof:", lines[2])

	for i, line := range lines[3:] {
		require.True(t, strings.HasPrefix(line, "  "), "line %d not indented", i)
		digest, err := base64.StdEncoding.DecodeString(strings.TrimSpace(line))
		require.NoError(t, err)
		assert.Equal(t, proof.Path[i], digest)
	}
}

func TestWriteProofEmptyPath(t *testing.T) {
	t.Parallel()

	prover := NewProver(sha256.New)
	proof, err := prover.GenerateProof(makeLeaves(1), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteProof(&buf, proof))
	assert.True(t, strings.HasSuffix(buf.String(), "Hash values in proof:\n"))
}
