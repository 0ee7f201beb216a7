package replay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phylokit/cpphylo/realize"
	"github.com/phylokit/cpphylo/snapshot"
)

// Run loads the Document at inputPath, applies characters to it in order
// via realize.Realize, and writes the resulting State's Document (plus
// fresh DOT sidecars) to outputPath. It stops and returns
// ErrRealizationRejected at the first rejected character, leaving
// outputPath untouched.
func Run(inputPath, outputPath string, characters []int) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("replay.Run: %w", err)
	}
	doc, err := snapshot.Load(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("replay.Run: %w", err)
	}

	st, err := doc.Materialize(filepath.Dir(inputPath))
	if err != nil {
		return fmt.Errorf("replay.Run: %w", err)
	}

	if len(characters) == 0 {
		realize.Cleanup(st)
	}

	for _, c := range characters {
		next, ok := realize.Realize(st, c)
		if !ok {
			return fmt.Errorf("replay.Run: character %d: %w", c, ErrRealizationRejected)
		}
		st = next
	}

	outDir := filepath.Dir(outputPath)
	stem := strippedExt(filepath.Base(outputPath))

	outDoc, err := snapshot.Dump(st, outDir, stem)
	if err != nil {
		return fmt.Errorf("replay.Run: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("replay.Run: %w", err)
	}
	defer out.Close()

	return outDoc.Save(out)
}

func strippedExt(name string) string {
	ext := filepath.Ext(name)

	return name[:len(name)-len(ext)]
}
