package lexer_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/lexer"
	"compsim/internal/source"
	"compsim/internal/token"
)

var registry = lang.NewRegistry()

// tokenize scans src and fails the test on error.
func tokenize(t *testing.T, l lang.Language, src string) []token.Token {
	t.Helper()
	toks, err := lexer.TokenizeString(src, l, registry)
	if err != nil {
		t.Fatalf("%v: tokenize %q: %v", l, src, err)
	}
	return toks
}

// lexFail scans src and returns the *LexError it must produce.
func lexFail(t *testing.T, l lang.Language, src string) *lexer.LexError {
	t.Helper()
	_, err := lexer.TokenizeString(src, l, registry)
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("%v: tokenize %q: expected *LexError, got %v", l, src, err)
	}
	return lexErr
}

type want struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, got []token.Token, expected []want) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("got %d tokens, want %d: %s", len(got), len(expected), dump(got))
	}
	for i, w := range expected {
		if got[i].Kind != w.kind || got[i].Text != w.text {
			t.Errorf("token %d = %s %q, want %s %q", i, got[i].Kind, got[i].Text, w.kind, w.text)
		}
	}
}

func dump(toks []token.Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(tok.Kind.String())
		sb.WriteString("(")
		sb.WriteString(tok.Text)
		sb.WriteString(")")
	}
	return sb.String()
}

func TestWhitespaceOnlyInput(t *testing.T) {
	inputs := []string{"", " ", "\t\t", "   \n  \n", "\r\n \n\t"}
	for _, l := range lang.All {
		for _, src := range inputs {
			toks := tokenize(t, l, src)
			for _, tok := range toks {
				if l != lang.Python || tok.Kind != token.Newline {
					t.Errorf("%v %q: unexpected token %s %q", l, src, tok.Kind, tok.Text)
				}
			}
			if l != lang.Python && len(toks) != 0 {
				t.Errorf("%v %q: expected no tokens, got %s", l, src, dump(toks))
			}
		}
	}
}

func TestCompoundAssignIsOneOperator(t *testing.T) {
	for _, l := range lang.All {
		t.Run(l.String(), func(t *testing.T) {
			expectTokens(t, tokenize(t, l, "a+=1"), []want{
				{token.Identifier, "a"},
				{token.Operator, "+="},
				{token.Number, "1"},
			})
		})
	}
}

func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		l    lang.Language
		src  string
		want []want
	}{
		{lang.Python, "x**=2", []want{{token.Identifier, "x"}, {token.Operator, "**="}, {token.Number, "2"}}},
		{lang.Python, "a//b", []want{{token.Identifier, "a"}, {token.Operator, "//"}, {token.Identifier, "b"}}},
		{lang.JavaScript, "a!==b", []want{{token.Identifier, "a"}, {token.Operator, "!=="}, {token.Identifier, "b"}}},
		{lang.JavaScript, "f=>x", []want{{token.Identifier, "f"}, {token.Operator, "=>"}, {token.Identifier, "x"}}},
		{lang.Java, "a>>>=1", []want{{token.Identifier, "a"}, {token.Operator, ">>>="}, {token.Number, "1"}}},
		{lang.Cpp, "a<=>b", []want{{token.Identifier, "a"}, {token.Operator, "<=>"}, {token.Identifier, "b"}}},
		{lang.Cpp, "std::cout", []want{{token.Identifier, "std"}, {token.Operator, "::"}, {token.Builtin, "cout"}}},
		{lang.C, "p->x", []want{{token.Identifier, "p"}, {token.Operator, "->"}, {token.Identifier, "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.l.String()+"/"+tt.src, func(t *testing.T) {
			expectTokens(t, tokenize(t, tt.l, tt.src), tt.want)
		})
	}
}

func TestPositionFidelity(t *testing.T) {
	programs := map[lang.Language]string{
		lang.JavaScript: "function add(a, b) {\n  return a + b; // sum\n}\nconst s = `x\ny`;\n",
		lang.Python:     "def add(a, b):\n    return a + b  # sum\n\nx = '''α\nβ''' + \"γ\"\n",
		lang.C:          "#include <stdio.h>\nint main(void) {\n\t/* c */ return 0x1F;\n}\n",
		lang.Cpp:        "int f(int x) { return x * 2; }\n",
		lang.Java:       "@Override\npublic int add(int a, int b) { return a + b; }\n",
	}
	for l, src := range programs {
		t.Run(l.String(), func(t *testing.T) {
			toks := tokenize(t, l, src)
			lines := strings.Split(src, "\n")
			for _, tok := range toks {
				if got := src[tok.Span.Start:tok.Span.End]; got != tok.Text {
					t.Errorf("span %v covers %q, text is %q", tok.Span, got, tok.Text)
				}
				first := tok.Text
				if i := strings.IndexByte(first, '\n'); i >= 0 {
					first = first[:i]
				}
				line := lines[tok.Line()-1]
				col := int(tok.Column()) - 1
				if col > utf8.RuneCountInString(line) {
					t.Fatalf("%q at %d:%d is past end of line %q", tok.Text, tok.Line(), tok.Column(), line)
				}
				rest := string([]rune(line)[col:])
				if !strings.HasPrefix(rest, first) {
					t.Errorf("%s %q at %d:%d does not match source %q", tok.Kind, tok.Text, tok.Line(), tok.Column(), rest)
				}
			}
		})
	}
}

// TestRawSourceFidelity checks that decomposed Unicode, CRLF line endings
// and a leading BOM reach the tokens unchanged.
func TestRawSourceFidelity(t *testing.T) {
	tests := []struct {
		name string
		l    lang.Language
		src  string
		last want
		line uint32
		col  uint32
	}{
		{"nfd", lang.JavaScript, "\"e\u0301\" + x", want{token.Identifier, "x"}, 1, 8},
		{"crlf", lang.Python, "x = 1\r\nif x:\r\n    y = 2\r\n", want{token.Newline, "\n"}, 3, 11},
		{"bom", lang.C, "\uFEFF#define N 1", want{token.Number, "1"}, 1, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := tokenize(t, tt.l, tt.src)
			for _, tok := range toks {
				if got := tt.src[tok.Span.Start:tok.Span.End]; got != tok.Text {
					t.Errorf("span %v covers %q, text is %q", tok.Span, got, tok.Text)
				}
			}
			last := toks[len(toks)-1]
			if last.Kind != tt.last.kind || last.Text != tt.last.text {
				t.Fatalf("last token = %s %q, want %s %q", last.Kind, last.Text, tt.last.kind, tt.last.text)
			}
			if last.Line() != tt.line || last.Column() != tt.col {
				t.Errorf("last token at %d:%d, want %d:%d", last.Line(), last.Column(), tt.line, tt.col)
			}
		})
	}

	if toks := tokenize(t, lang.C, "\uFEFF#include <x.h>"); toks[0].Kind != token.Directive || toks[0].Span.Start != 3 {
		t.Errorf("directive after BOM: %s", dump(toks))
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		l    lang.Language
		src  string
		want []want
	}{
		{lang.Python, "print(len)", []want{
			{token.Builtin, "print"}, {token.Punctuation, "("}, {token.Builtin, "len"}, {token.Punctuation, ")"},
		}},
		{lang.JavaScript, "let $el = console", []want{
			{token.Keyword, "let"}, {token.Identifier, "$el"}, {token.Operator, "="}, {token.Builtin, "console"},
		}},
		{lang.Java, "String s", []want{{token.Keyword, "String"}, {token.Identifier, "s"}}},
		{lang.C, "printf sizeof", []want{{token.Builtin, "printf"}, {token.Keyword, "sizeof"}}},
		{lang.C, "a.b", []want{{token.Identifier, "a"}, {token.Operator, "."}, {token.Identifier, "b"}}},
		{lang.JavaScript, "a.b;", []want{
			{token.Identifier, "a"}, {token.Punctuation, "."}, {token.Identifier, "b"}, {token.Punctuation, ";"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.l.String()+"/"+tt.src, func(t *testing.T) {
			expectTokens(t, tokenize(t, tt.l, tt.src), tt.want)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		l    lang.Language
		src  string
		want []want
	}{
		{lang.JavaScript, "0x1F 0o17 0b101 1.5 .5 1e10 2.5E-3 1.", []want{
			{token.Number, "0x1F"}, {token.Number, "0o17"}, {token.Number, "0b101"}, {token.Number, "1.5"},
			{token.Number, ".5"}, {token.Number, "1e10"}, {token.Number, "2.5E-3"}, {token.Number, "1."},
		}},
		{lang.JavaScript, "10L", []want{{token.Number, "10"}, {token.Identifier, "L"}}},
		{lang.JavaScript, "0x", []want{{token.Number, "0"}, {token.Identifier, "x"}}},
		{lang.JavaScript, "1e", []want{{token.Number, "1"}, {token.Identifier, "e"}}},
		{lang.Python, "0O7 0B1", []want{{token.Number, "0O7"}, {token.Number, "0B1"}}},
		{lang.C, "017 10L 2.5f 0xFF", []want{
			{token.Number, "017"}, {token.Number, "10L"}, {token.Number, "2.5f"}, {token.Number, "0xFF"},
		}},
		{lang.C, "3d", []want{{token.Number, "3"}, {token.Identifier, "d"}}},
		{lang.Java, "3d 4F 5l", []want{{token.Number, "3d"}, {token.Number, "4F"}, {token.Number, "5l"}}},
		{lang.C, "0b1", []want{{token.Number, "0"}, {token.Identifier, "b1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.l.String()+"/"+tt.src, func(t *testing.T) {
			expectTokens(t, tokenize(t, tt.l, tt.src), tt.want)
		})
	}
}

func TestStringsAndChars(t *testing.T) {
	tests := []struct {
		l    lang.Language
		src  string
		want []want
	}{
		{lang.JavaScript, "`a\nb` 'c' \"d\\\"e\"", []want{
			{token.String, "`a\nb`"}, {token.String, "'c'"}, {token.String, `"d\"e"`},
		}},
		{lang.Python, "\"\"\"doc\nmore\"\"\" 'x'", []want{
			{token.String, "\"\"\"doc\nmore\"\"\""}, {token.String, "'x'"},
		}},
		{lang.Python, "'''a''' \"\"", []want{{token.String, "'''a'''"}, {token.String, `""`}}},
		{lang.C, `'a' "s\n"`, []want{{token.Char, "'a'"}, {token.String, `"s\n"`}}},
		{lang.Java, `'\''`, []want{{token.Char, `'\''`}}},
	}
	for _, tt := range tests {
		t.Run(tt.l.String(), func(t *testing.T) {
			expectTokens(t, tokenize(t, tt.l, tt.src), tt.want)
		})
	}
}

func TestUnterminatedLiterals(t *testing.T) {
	tests := []struct {
		l    lang.Language
		src  string
		code diag.Code
		line uint32
		col  uint32
	}{
		{lang.JavaScript, `x = "abc`, diag.LexUnterminatedString, 1, 5},
		{lang.JavaScript, "`never", diag.LexUnterminatedString, 1, 1},
		{lang.Python, "s = 'a\nb'", diag.LexUnterminatedString, 1, 5},
		{lang.Python, `"""open`, diag.LexUnterminatedString, 1, 1},
		{lang.C, "c = 'x", diag.LexUnterminatedChar, 1, 5},
		{lang.Java, "/* never closed", diag.LexUnterminatedBlockComment, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.l.String()+"/"+tt.src, func(t *testing.T) {
			err := lexFail(t, tt.l, tt.src)
			if err.Code != tt.code || err.Line != tt.line || err.Col != tt.col {
				t.Errorf("got %s at %d:%d, want %s at %d:%d", err.Code.ID(), err.Line, err.Col, tt.code.ID(), tt.line, tt.col)
			}
		})
	}
}

func TestCommentsDropped(t *testing.T) {
	expectTokens(t, tokenize(t, lang.C, "// x\n/* y\n z */ w"), []want{{token.Identifier, "w"}})
	expectTokens(t, tokenize(t, lang.JavaScript, "a // b\n/**/c"), []want{{token.Identifier, "a"}, {token.Identifier, "c"}})
	expectTokens(t, tokenize(t, lang.Python, "# c\nx # d"), []want{{token.Newline, "\n"}, {token.Identifier, "x"}})
	expectTokens(t, tokenize(t, lang.Java, "a/b"), []want{{token.Identifier, "a"}, {token.Operator, "/"}, {token.Identifier, "b"}})
}

func TestDirectivesAndAnnotations(t *testing.T) {
	toks := tokenize(t, lang.C, "  #include <stdio.h>\n#define N 1")
	if toks[0].Kind != token.Directive || toks[0].Text != "#include" {
		t.Errorf("first token = %s %q", toks[0].Kind, toks[0].Text)
	}
	var directives int
	for _, tok := range toks {
		if tok.Kind == token.Directive {
			directives++
		}
	}
	if directives != 2 {
		t.Errorf("expected 2 directives, got %d: %s", directives, dump(toks))
	}

	lexFail(t, lang.Cpp, "x #y")
	lexFail(t, lang.C, "# 1")

	expectTokens(t, tokenize(t, lang.Java, "@Override\n@Test2 void"), []want{
		{token.Annotation, "@Override"}, {token.Annotation, "@Test2"}, {token.Keyword, "void"},
	})
	lexFail(t, lang.Java, "@ x")
	lexFail(t, lang.JavaScript, "@x")
	expectTokens(t, tokenize(t, lang.Python, "a @ b"), []want{
		{token.Identifier, "a"}, {token.Operator, "@"}, {token.Identifier, "b"},
	})
}

func TestPythonIndentation(t *testing.T) {
	src := "def f(a):\n    return a\nx\n"
	toks := tokenize(t, lang.Python, src)
	expectTokens(t, toks, []want{
		{token.Keyword, "def"}, {token.Identifier, "f"}, {token.Punctuation, "("}, {token.Identifier, "a"},
		{token.Punctuation, ")"}, {token.Punctuation, ":"}, {token.Newline, "\n"},
		{token.Indent, "    "}, {token.Keyword, "return"}, {token.Identifier, "a"}, {token.Newline, "\n"},
		{token.Dedent, ""}, {token.Identifier, "x"}, {token.Newline, "\n"},
	})
	if ind := toks[7]; ind.Line() != 2 || ind.Column() != 1 {
		t.Errorf("indent at %d:%d, want 2:1", ind.Line(), ind.Column())
	}
	if ded := toks[11]; ded.Line() != 3 || ded.Column() != 1 || !ded.Span.Empty() {
		t.Errorf("dedent at %d:%d span %v", ded.Line(), ded.Column(), ded.Span)
	}
}

func TestPythonSingleCounter(t *testing.T) {
	toks := tokenize(t, lang.Python, "a\n  b\n    c\nd")
	var indents, dedents int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	if indents != 2 || dedents != 1 {
		t.Errorf("indents=%d dedents=%d, want 2 and 1: %s", indents, dedents, dump(toks))
	}

	// blank and comment-only lines never change the indentation width
	expectTokens(t, tokenize(t, lang.Python, "a\n  b\n\n   # note\n  c"), []want{
		{token.Identifier, "a"}, {token.Newline, "\n"},
		{token.Indent, "  "}, {token.Identifier, "b"}, {token.Newline, "\n"},
		{token.Newline, "\n"}, {token.Newline, "\n"},
		{token.Identifier, "c"},
	})

	// tabs and spaces are compared by length only
	expectTokens(t, tokenize(t, lang.Python, "a\n\tb\n c"), []want{
		{token.Identifier, "a"}, {token.Newline, "\n"},
		{token.Indent, "\t"}, {token.Identifier, "b"}, {token.Newline, "\n"},
		{token.Identifier, "c"},
	})
}

func TestUnknownCharacter(t *testing.T) {
	err := lexFail(t, lang.JavaScript, "a ? b")
	if err.Char != '?' || err.Line != 1 || err.Col != 3 || err.Code != diag.LexUnknownChar {
		t.Errorf("got %+v", err)
	}
	err = lexFail(t, lang.Python, "x = 1\ny = \u00e9")
	if err.Char != '\u00e9' || err.Line != 2 || err.Col != 5 {
		t.Errorf("got %+v", err)
	}
	if err.Span.Len() != 2 {
		t.Errorf("span must cover the whole rune, got %v", err.Span)
	}
	if !strings.Contains(err.Error(), "line 2, column 5") {
		t.Errorf("Error() = %q", err.Error())
	}
	if d := err.Diagnostic(); d.Severity != diag.SevError || d.Line != 2 {
		t.Errorf("Diagnostic() = %+v", d)
	}
	lexFail(t, lang.C, "a:b")
	lexFail(t, lang.Java, "\fx")
}

func TestConfigError(t *testing.T) {
	_, err := lexer.TokenizeString("x", lang.Invalid, registry)
	var cfgErr *lang.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.js", []byte("x")))
	if _, err := lexer.Tokenize(file, nil); !errors.As(err, &cfgErr) {
		t.Fatalf("nil profile: expected *ConfigError, got %v", err)
	}
}
