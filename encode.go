package merkle

import (
	"encoding/base64"
	"fmt"
	"io"
)

// WriteProof renders a proof as text: the leaf position, the leaf
// value and one base64 line per sibling digest, bottom to top.
func WriteProof(w io.Writer, proof *Proof) error {
	if _, err := fmt.Fprintf(w, "leaf position: %d\n", proof.Index); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "leaf value: %q\n", proof.Leaf); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Hash values in proof:"); err != nil {
		return err
	}
	for _, digest := range proof.Path {
		if _, err := fmt.Fprintf(w, "  %s\n", base64.StdEncoding.EncodeToString(digest)); err != nil {
			return err
		}
	}
	return nil
}
