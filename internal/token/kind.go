package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Keyword is a reserved word of the language.
	Keyword
	// Builtin is an identifier naming a well-known library object or function.
	Builtin
	// Identifier is any other identifier-shaped lexeme.
	Identifier
	// Number is a numeric literal.
	Number
	// String is a quoted string literal.
	String
	// Char is a single-quoted character literal (C, C++, Java).
	Char
	// Operator is any operator, single or multi-character.
	Operator
	// Punctuation is single-character punctuation such as '(' or ','.
	Punctuation
	// Comment is reserved for tooling; the tokenizer drops comments.
	Comment
	// Indent marks an increase of leading whitespace.
	Indent
	// Dedent marks a decrease of leading whitespace.
	Dedent
	// Newline is a retained line break.
	Newline
	// Directive is a line-initial preprocessor name such as #include.
	Directive
	// Annotation is an @Name annotation.
	Annotation
)

var kindNames = [...]string{
	Invalid:     "invalid",
	Keyword:     "keyword",
	Builtin:     "builtin",
	Identifier:  "identifier",
	Number:      "number",
	String:      "string",
	Char:        "char",
	Operator:    "operator",
	Punctuation: "punctuation",
	Comment:     "comment",
	Indent:      "indent",
	Dedent:      "dedent",
	Newline:     "newline",
	Directive:   "directive",
	Annotation:  "annotation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true // #nosec G115 -- bounded by kindNames
		}
	}
	return Invalid, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, _ := ParseKind(string(text))
	*k = v
	return nil
}

// IsLayout reports whether the kind is produced by the indentation pass.
func (k Kind) IsLayout() bool {
	return k == Newline || k == Indent || k == Dedent
}
