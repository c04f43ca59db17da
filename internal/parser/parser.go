package parser

import (
	"compsim/internal/diag"
	"compsim/internal/lang"
	"compsim/internal/source"
	"compsim/internal/token"
)

type Options struct {
	// MaxErrors caps the diagnostics kept in the result; 0 keeps all.
	MaxErrors int
	// Registry supplies the language profile; nil means lang.Default().
	Registry *lang.Registry
}

type Result struct {
	Success     bool
	Diagnostics []diag.Diagnostic
}

// Parser — состояние парсера на один вызов
type Parser struct {
	toks    []token.Token
	pos     int
	profile *lang.Profile // nil для неизвестного языка: только выражения
	bag     *diag.Bag
	rep     diag.Reporter
	errors  int // все ошибки, включая отброшенные лимитом
}

// Parse validates tokens against the shared grammar. Exactly one top-level
// construct is attempted: a function when the first token is one of the
// language's introducers, an expression otherwise. Parse never panics and
// never returns an error; problems come back as diagnostics.
func Parse(tokens []token.Token, language lang.Language, opts Options) Result {
	reg := opts.Registry
	if reg == nil {
		reg = lang.Default()
	}
	profile, _ := reg.Lookup(language) // неизвестный язык — только выражения

	bag := diag.NewBag(opts.MaxErrors)
	p := &Parser{
		toks:    tokens,
		profile: profile,
		bag:     bag,
		rep:     diag.BagReporter{Bag: bag},
	}
	p.parseTop()

	return Result{
		Success:     p.errors == 0 && p.atEnd(),
		Diagnostics: bag.Items(),
	}
}

// parseTop — единственная конструкция верхнего уровня и проверка хвоста.
func (p *Parser) parseTop() {
	p.skipLayout()
	if p.atIntroducer() {
		p.parseFunction()
	} else {
		p.parseExpression()
	}
	p.skipLayout()

	if !p.atEnd() && p.errors == 0 {
		p.errAt(diag.SynUnexpectedToken, "Unexpected token at the end", "end of input")
	}
}

func (p *Parser) atIntroducer() bool {
	if p.profile == nil || p.atEnd() {
		return false
	}
	tok := p.peek()
	return tok.Kind == token.Keyword && p.profile.IsIntroducer(tok.Text)
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

// peek returns the current token; the zero Token at end of input.
func (p *Parser) peek() token.Token {
	if p.atEnd() {
		return token.Token{}
	}
	return p.toks[p.pos]
}

// advance — съедает текущий токен (в конце ввода ничего не делает)
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return !p.atEnd() && p.toks[p.pos].Kind == k
}

func (p *Parser) atPunct(text string) bool {
	return !p.atEnd() && p.toks[p.pos].IsPunct(text)
}

func (p *Parser) atOp(texts ...string) bool {
	if p.atEnd() || p.toks[p.pos].Kind != token.Operator {
		return false
	}
	for _, t := range texts {
		if p.toks[p.pos].Text == t {
			return true
		}
	}
	return false
}

// skipLayout consumes NEWLINE/INDENT/DEDENT tokens around the top-level construct.
func (p *Parser) skipLayout() {
	for !p.atEnd() && p.toks[p.pos].Kind.IsLayout() {
		p.pos++
	}
}

// endPosition is the position just past the last token, used for
// "end of input" diagnostics.
func (p *Parser) endPosition() (source.Span, source.LineCol) {
	if len(p.toks) == 0 {
		return source.Span{}, source.LineCol{Line: 1, Col: 1}
	}
	last := p.toks[len(p.toks)-1]
	pos := last.Pos
	for _, r := range last.Text {
		if r == '\n' {
			pos.Line++
			pos.Col = 1
			continue
		}
		pos.Col++
	}
	return last.Span.ZeroideToEnd(), pos
}
