package sema_test

import (
	"testing"

	"compsim/internal/ast"
	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/lexer"
	"compsim/internal/sema"
	"compsim/internal/source"
	"compsim/internal/tree"
)

func analyze(t *testing.T, src string, l lang.Language, opts sema.Options) (sema.Result, *ast.Tree) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("input", []byte(src)))
	prof, err := lang.Default().Lookup(l)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	toks, err := lexer.Tokenize(file, prof)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	tr := ast.Build(toks, l)
	opts.File = file
	return sema.Analyze(tr, l, opts), tr
}

func TestDivisionByZeroWarns(t *testing.T) {
	for _, l := range lang.All {
		t.Run(l.String(), func(t *testing.T) {
			res, _ := analyze(t, "1/0", l, sema.Options{})
			if !res.Success {
				t.Fatalf("warnings must not fail analysis: %+v", res.Errors)
			}
			if len(res.Errors) != 0 || len(res.Warnings) != 1 {
				t.Fatalf("errors=%d warnings=%d", len(res.Errors), len(res.Warnings))
			}
			w := res.Warnings[0]
			if w.Message != "Division by zero" || w.Code != diag.SemaDivisionByZero || w.Severity != diag.SevWarning {
				t.Fatalf("unexpected warning %+v", w)
			}
			if w.Line != 1 || w.Column != 1 {
				t.Fatalf("position = %d:%d", w.Line, w.Column)
			}
		})
	}
}

func TestDivisionByZeroOnlyLiteralZero(t *testing.T) {
	cases := []struct {
		src      string
		warnings int
	}{
		{"4/2", 0},
		{"4/0.0", 0},
		{"0/4", 0},
		{"4*0", 0},
		{"4/(0)", 1},
		{"1/0/0", 2},
		{"(1/0)+(2/0)", 2},
	}
	for _, tc := range cases {
		res, _ := analyze(t, tc.src, lang.C, sema.Options{})
		if len(res.Warnings) != tc.warnings {
			t.Fatalf("%q: warnings = %d, want %d", tc.src, len(res.Warnings), tc.warnings)
		}
	}
}

func TestUndefinedVariables(t *testing.T) {
	res, _ := analyze(t, "x + y * x", lang.Python, sema.Options{})
	if res.Success {
		t.Fatalf("undeclared names must fail")
	}
	want := []string{"Undefined variable: x", "Undefined variable: y", "Undefined variable: x"}
	if len(res.Errors) != len(want) {
		t.Fatalf("errors = %d, want %d", len(res.Errors), len(want))
	}
	for i, d := range res.Errors {
		if d.Message != want[i] || d.Code != diag.SemaUndefinedVariable {
			t.Fatalf("error %d = %+v", i, d)
		}
	}
	if res.Errors[1].Column != 5 {
		t.Fatalf("y column = %d", res.Errors[1].Column)
	}
}

func TestDeclaredNamesSuppressErrors(t *testing.T) {
	res, _ := analyze(t, "x + y / 0", lang.Java, sema.Options{Declared: []string{"x", "y"}})
	if !res.Success || len(res.Errors) != 0 {
		t.Fatalf("declared names flagged: %+v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %d", len(res.Warnings))
	}
}

func TestErrorLeavesAreInert(t *testing.T) {
	res, _ := analyze(t, "1 + ;", lang.JavaScript, sema.Options{})
	if !res.Success || len(res.Warnings) != 0 {
		t.Fatalf("error leaves must be ignored: %+v", res)
	}
}

func TestReporterReceivesDiagnostics(t *testing.T) {
	bag := diag.NewBag(0)
	res, _ := analyze(t, "a/0", lang.Cpp, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != len(res.Errors)+len(res.Warnings) {
		t.Fatalf("bag = %d, result = %d+%d", bag.Len(), len(res.Errors), len(res.Warnings))
	}
}

func TestAnalyzeTreeMatchesAnalyze(t *testing.T) {
	inputs := []string{"1/0", "a + b", "q / 0 - 3", "2*(3+4)"}
	for _, src := range inputs {
		res, tr := analyze(t, src, lang.JavaScript, sema.Options{Declared: []string{"a"}})
		proj := sema.AnalyzeTree(tree.FromAST(tr), lang.JavaScript, sema.Options{Declared: []string{"a"}})
		if proj.Success != res.Success || len(proj.Errors) != len(res.Errors) || len(proj.Warnings) != len(res.Warnings) {
			t.Fatalf("%q: projection result %+v differs from %+v", src, proj, res)
		}
		for i := range res.Errors {
			if proj.Errors[i].Message != res.Errors[i].Message {
				t.Fatalf("%q: message %q vs %q", src, proj.Errors[i].Message, res.Errors[i].Message)
			}
		}
	}
}

func TestAnalyzeTreeSubtreeRoot(t *testing.T) {
	ident := &tree.Node{Name: tree.NameIdent, Attributes: map[string]string{"value": "q"}}
	res := sema.AnalyzeTree(ident, lang.Python, sema.Options{})
	if res.Success || len(res.Errors) != 1 || res.Errors[0].Message != "Undefined variable: q" {
		t.Fatalf("identifier root: %+v", res)
	}

	div := &tree.Node{
		Name:       tree.NameBinary,
		Attributes: map[string]string{"operator": "/"},
		Children: []*tree.Node{
			{Name: tree.NameNumber, Attributes: map[string]string{"value": "1"}},
			{Name: tree.NameNumber, Attributes: map[string]string{"value": "0"}},
		},
	}
	res = sema.AnalyzeTree(div, lang.C, sema.Options{})
	if !res.Success || len(res.Warnings) != 1 || res.Warnings[0].Code != diag.SemaDivisionByZero {
		t.Fatalf("binary root: %+v", res)
	}

	if res = sema.AnalyzeTree(nil, lang.C, sema.Options{}); !res.Success {
		t.Fatalf("nil projection must succeed")
	}
}

func TestAnalyzeNilTree(t *testing.T) {
	res := sema.Analyze(nil, lang.C, sema.Options{})
	if !res.Success {
		t.Fatalf("empty analysis must succeed")
	}
}

func TestSymbolTable(t *testing.T) {
	st := sema.NewSymbolTable("b", "a", "", "a")
	if st.Len() != 2 || !st.Has("a") || st.Has("") {
		t.Fatalf("unexpected table %v", st.Names())
	}
	if names := st.Names(); names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
}
