package ast_test

import (
	"strings"
	"testing"

	"compsim/internal/ast"
	"compsim/internal/lang"
	"compsim/internal/lexer"
)

// render prints the tree in prefix form: (op l r), leaves as text, errors as !text.
func render(t *testing.T, tr *ast.Tree, id ast.ExprID) string {
	t.Helper()
	exprs := tr.Builder.Exprs
	e := exprs.Get(id)
	if e == nil {
		t.Fatalf("missing expr %d", id)
	}
	switch e.Kind {
	case ast.ExprNumber, ast.ExprIdent:
		leaf, _ := exprs.Leaf(id)
		return leaf.Text
	case ast.ExprError:
		leaf, _ := exprs.Leaf(id)
		return "!" + leaf.Text
	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		return "(" + bin.Op.String() + " " + render(t, tr, bin.Left) + " " + render(t, tr, bin.Right) + ")"
	default:
		t.Fatalf("unexpected kind %v", e.Kind)
		return ""
	}
}

func build(t *testing.T, src string, l lang.Language) *ast.Tree {
	t.Helper()
	toks, err := lexer.TokenizeString(src, l, lang.Default())
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return ast.Build(toks, l)
}

func TestBuildShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2*(3+4)", "(* 2 (+ 3 4))"},
		{"1+2*3", "(+ 1 (* 2 3))"},
		{"1-2-3", "(- (- 1 2) 3)"},
		{"8/4/2", "(/ (/ 8 4) 2)"},
		{"a*b+c/d", "(+ (* a b) (/ c d))"},
		{"(1+2", "(+ 1 2)"},
		{"x", "x"},
		{"1+", "(+ 1 !)"},
		{"", "!"},
		{")", "!)"},
		{"1 2", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			for _, l := range lang.All {
				tr := build(t, tc.src, l)
				if got := render(t, tr, tr.Body()); got != tc.want {
					t.Fatalf("%s: got %s, want %s", l, got, tc.want)
				}
			}
		})
	}
}

func TestBuildFunctionBecomesError(t *testing.T) {
	tr := build(t, "function f(a) { return a; }", lang.JavaScript)
	if got := render(t, tr, tr.Body()); got != "!function" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildSkipsLeadingLayout(t *testing.T) {
	tr := build(t, "\n\nx + 1\n", lang.Python)
	if got := render(t, tr, tr.Body()); got != "(+ x 1)" {
		t.Fatalf("got %s", got)
	}
}

func TestBuildSpans(t *testing.T) {
	src := "foo * (bar + 1)"
	tr := build(t, src, lang.C)
	body := tr.Builder.Exprs.Get(tr.Body())
	if body.Kind != ast.ExprBinary {
		t.Fatalf("kind = %v", body.Kind)
	}
	if got := src[body.Span.Start:body.Span.End]; !strings.HasPrefix(got, "foo") || !strings.HasSuffix(got, "1") {
		t.Fatalf("binary span covers %q", got)
	}
	prog := tr.Builder.Program(tr.Root)
	if prog == nil || prog.Body != tr.Body() {
		t.Fatalf("program root does not own the body")
	}
}

func TestBuildDeterministic(t *testing.T) {
	src := "a + b * (c - 4) / 0"
	first := build(t, src, lang.Java)
	second := build(t, src, lang.Java)
	if render(t, first, first.Body()) != render(t, second, second.Body()) {
		t.Fatalf("non-deterministic build")
	}
}

func TestBuildTerminatesOnGarbage(t *testing.T) {
	inputs := []string{"((((", "))))", "+ - * /", "{ } ; ,", "( ( 1 + ) * ("}
	for _, src := range inputs {
		tr := build(t, src, lang.JavaScript)
		if !tr.Body().IsValid() {
			t.Fatalf("%q: no body", src)
		}
	}
}
