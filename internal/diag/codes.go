package diag

import (
	"fmt"
	"strconv"
	"strings"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004

	// Парсерные
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectFunctionName   Code = 2002
	SynExpectLParen         Code = 2003
	SynExpectParamName      Code = 2004
	SynExpectParamSeparator Code = 2005
	SynExpectRParen         Code = 2006
	SynExpectColon          Code = 2007
	SynExpectRBrace         Code = 2008
	SynUnclosedParen        Code = 2009
	SynExpectExpression     Code = 2010

	// Семантические
	SemaInfo              Code = 3000
	SemaUndefinedVariable Code = 3001
	SemaDivisionByZero    Code = 3101

	// IO
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnterminatedChar:         "Unterminated character literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectFunctionName:       "Expected function name",
	SynExpectLParen:             "Expected '('",
	SynExpectParamName:          "Expected parameter name",
	SynExpectParamSeparator:     "Expected ',' or ')'",
	SynExpectRParen:             "Expected ')' after parameters",
	SynExpectColon:              "Expected ':'",
	SynExpectRBrace:             "Expected '}'",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynExpectExpression:         "Expected expression",
	SemaInfo:                    "Semantic information",
	SemaUndefinedVariable:       "Undefined variable",
	SemaDivisionByZero:          "Division by zero",
	IOLoadFileError:             "I/O error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// MarshalText renders the code by its stable ID.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.ID()), nil
}

// UnmarshalText accepts the ID form produced by MarshalText.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(text)
	for _, prefix := range []string{"LEX", "SYN", "SEM", "IO"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			n, err := strconv.ParseUint(rest, 10, 16)
			if err != nil {
				return fmt.Errorf("bad diagnostic code %q: %w", s, err)
			}
			*c = Code(n)
			return nil
		}
	}
	*c = UnknownCode
	return nil
}
