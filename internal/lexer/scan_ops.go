package lexer

import (
	"compsim/internal/token"
)

// Жадность: операторы профиля отсортированы от длинных к коротким, так что
// первый совпавший — самый длинный ("**=" никогда не делится на "*", "*", "=").
// Затем односимвольная пунктуация.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	if op, ok := lx.profile.MatchOperator(lx.cursor.Rest()); ok {
		lx.cursor.Advance(len(op))
		return lx.emit(token.Operator, start), true
	}
	if lx.profile.IsPunct(lx.cursor.Peek()) {
		lx.cursor.Bump()
		return lx.emit(token.Punctuation, start), true
	}
	return token.Token{}, false
}
