package testkit

import (
	"testing"

	"compsim/internal/ast"
	"compsim/internal/lang"
	"compsim/internal/lexer"
	"compsim/internal/source"
)

func build(t *testing.T, src string, l lang.Language) (*ast.Tree, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t", []byte(src)))
	toks, err := lexer.Tokenize(file, lang.Default().MustLookup(l))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return ast.Build(toks, l), file
}

func TestCheckSpanInvariantsHolds(t *testing.T) {
	inputs := []string{"2*(3+4)", "a - b / c", "1+", "", "function f() {}", "(((x)))"}
	for _, l := range lang.All {
		for _, src := range inputs {
			tr, file := build(t, src, l)
			if err := CheckSpanInvariants(tr, file); err != nil {
				t.Errorf("%v %q: %v", l, src, err)
			}
		}
	}
}

func TestCheckSpanInvariantsCatchesMismatch(t *testing.T) {
	tr, file := build(t, "abc", lang.C)
	other := &source.File{Content: []byte("xyz")}
	if err := CheckSpanInvariants(tr, other); err == nil {
		t.Fatalf("expected text mismatch")
	}
	if err := CheckSpanInvariants(nil, file); err == nil {
		t.Fatalf("expected nil tree error")
	}
}
