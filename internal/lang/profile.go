package lang

// NumberGrammar describes which numeric literal forms a language scans.
// Decimal integers, fractions (including the ".5" form) and exponents are
// always accepted.
type NumberGrammar struct {
	Hex         bool   // 0x1F
	PrefixOctal bool   // 0o17
	Binary      bool   // 0b101
	LegacyOctal bool   // 017
	Suffixes    string // one optional trailing letter, e.g. "lLfF"
}

// StringGrammar describes the quoted literal forms of a language.
type StringGrammar struct {
	Double       bool // "..."
	Single       bool // '...' as a string
	CharLiteral  bool // '...' as a char token
	Backtick     bool // `...`, may span lines
	TripleQuoted bool // """...""" and '''...''', may span lines
}

// Profile is the static lexical and grammar description of one language.
type Profile struct {
	Language Language

	LineComment  string // "//" or "" when absent
	BlockComment bool   // /* ... */
	HashComment  bool   // # to end of line

	Number NumberGrammar
	String StringGrammar

	// Punct holds the single-character punctuation bytes.
	Punct string
	// Operators is sorted longest-first so the scanner can take the first match.
	Operators []string

	Keywords map[string]struct{}
	Builtins map[string]struct{}
	// Introducers are the keywords that may open a function construct.
	Introducers map[string]struct{}

	// IdentDollar allows '$' in identifiers.
	IdentDollar bool
	// UsesIndentation retains newlines and leading whitespace for the indentation pass.
	UsesIndentation bool
	// Directive enables line-initial '#name' tokens.
	Directive bool
	// Annotation enables '@Name' tokens.
	Annotation bool

	// ColonAfterHeader requires ':' after a function header.
	ColonAfterHeader bool
	// BraceBody allows an optional '{ ... }' body after a function header.
	BraceBody bool
}

// IsKeyword reports keyword membership.
func (p *Profile) IsKeyword(s string) bool {
	_, ok := p.Keywords[s]
	return ok
}

// IsBuiltin reports builtin-name membership.
func (p *Profile) IsBuiltin(s string) bool {
	_, ok := p.Builtins[s]
	return ok
}

// IsIntroducer reports whether s may open a function construct.
func (p *Profile) IsIntroducer(s string) bool {
	_, ok := p.Introducers[s]
	return ok
}

// IsPunct reports whether b is single-character punctuation.
func (p *Profile) IsPunct(b byte) bool {
	for i := 0; i < len(p.Punct); i++ {
		if p.Punct[i] == b {
			return true
		}
	}
	return false
}

// MatchOperator returns the longest operator that prefixes src.
func (p *Profile) MatchOperator(src []byte) (string, bool) {
	for _, op := range p.Operators {
		if len(op) <= len(src) && string(src[:len(op)]) == op {
			return op, true
		}
	}
	return "", false
}
