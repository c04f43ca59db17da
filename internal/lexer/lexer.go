package lexer

import (
	"errors"
	"io"

	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/source"
	"compsim/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	profile *lang.Profile
	// lineStart is set while the cursor sits at the start of a line whose
	// leading whitespace has not been measured yet (indentation-sensitive only).
	lineStart bool
}

func New(file *source.File, profile *lang.Profile) *Lexer {
	return &Lexer{
		file:      file,
		cursor:    NewCursor(file),
		profile:   profile,
		lineStart: profile != nil && profile.UsesIndentation,
	}
}

// Tokenize scans the whole file. For indentation-sensitive languages the
// result has already been through the indentation pass.
func Tokenize(file *source.File, profile *lang.Profile) ([]token.Token, error) {
	if profile == nil || !profile.Language.Valid() {
		return nil, &lang.ConfigError{Tag: "<nil>"}
	}
	lx := New(file, profile)
	toks := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		tok, err := lx.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	if profile.UsesIndentation {
		toks = resolveIndentation(toks)
	}
	return toks, nil
}

// TokenizeString tokenizes an in-memory snippet. The language is looked up
// in reg before any scanning happens.
func TokenizeString(src string, l lang.Language, reg *lang.Registry) ([]token.Token, error) {
	profile, err := reg.Lookup(l)
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(src)))
	return Tokenize(file, profile)
}

// Next returns the next raw token. Leading-whitespace runs of an
// indentation-sensitive language come back as Indent tokens carrying the raw
// run; resolveIndentation turns them into INDENT/DEDENT markers.
// At end of input it returns io.EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.lineStart {
		lx.lineStart = false
		if tok, ok := lx.scanIndentRun(); ok {
			return tok, nil
		}
	}

	if err := lx.skipTrivia(); err != nil {
		return token.Token{}, err
	}
	if lx.cursor.EOF() {
		return token.Token{}, io.EOF
	}

	ch := lx.cursor.Peek()
	p := lx.profile

	switch {
	case ch == '\n':
		// only reached for indentation-sensitive languages
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.lineStart = true
		return lx.emit(token.Newline, start), nil

	case ch == '"' || ch == '\'' || (ch == '`' && p.String.Backtick):
		return lx.scanString()

	case isDec(ch) || (ch == '.' && lx.isNumberAfterDot()):
		return lx.scanNumber(), nil
	}

	if tok, ok := lx.scanOperatorOrPunct(); ok {
		return tok, nil
	}

	if lx.isIdentStart(ch) {
		return lx.scanIdent(), nil
	}

	switch {
	case ch == '#' && p.Directive:
		return lx.scanDirective()
	case ch == '@' && p.Annotation:
		return lx.scanAnnotation()
	}

	start := lx.cursor.Mark()
	lx.bumpRune()
	return token.Token{}, lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected character")
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: k,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Span: sp,
		Pos:  lx.file.Position(sp.Start),
	}
}
