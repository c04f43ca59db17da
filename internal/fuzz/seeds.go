package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"compsim/internal/lang"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"1+2*3",
	"1+",
	"2*(3+4)",
	"1/0",
	"a += 1",
	"((((",
	"))))",
	"x = 'unterminated",
	"/* open comment",
	"def f(x):\n    if x:\n        return x\n  y = 1\n",
	"#include <stdio.h>\nint main() { return 0; }",
	"@Override public String s() { return `t`; }",
	"0x1F 0b101 1.5e-3 10L 2.0f",
	"\t\r\n \n",
}

// addCorpusSeeds adds every inline seed and testdata sample under each
// language profile.
func addCorpusSeeds(f *testing.F) {
	sources := make([][]byte, 0, len(inlineSeeds)+8)
	for _, s := range inlineSeeds {
		sources = append(sources, []byte(s))
	}
	sources = append(sources, testdataSeeds()...)
	for i := range lang.All {
		for _, src := range sources {
			f.Add(uint8(i), src)
		}
	}
}

func testdataSeeds() [][]byte {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return nil
	}
	var out [][]byte
	// ошибки обхода не важны: корпус best-effort
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, clampSeed(src))
		return nil
	})
	return out
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

// pick maps an arbitrary byte onto a supported language.
func pick(b uint8) lang.Language {
	return lang.All[int(b)%len(lang.All)]
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
