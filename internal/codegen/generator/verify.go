package generator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/blake2b"
)

// ErrStale is returned by Verify when the header on disk differs from a fresh generation.
var ErrStale = errors.New("generated output is stale")

// Digest is the BLAKE2b-256 sum of a generated header.
type Digest [blake2b.Size256]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Verify regenerates inPath in memory and compares it with outPath.
// A missing output file counts as stale.
func (g *Generator) Verify(inPath, outPath string) error {
	fresh, err := g.Render(inPath)
	if err != nil {
		return err
	}
	want := Digest(blake2b.Sum256(fresh))

	existing, err := os.ReadFile(outPath)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrStale, outPath)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	got := Digest(blake2b.Sum256(existing))

	if got != want {
		g.logger.Warn("Generated header is out of date", "output", outPath, "have", got.String(), "want", want.String())
		return fmt.Errorf("%w: %s", ErrStale, outPath)
	}
	g.logger.Info("Generated header is up to date", "output", outPath, "digest", got.String())
	return nil
}
