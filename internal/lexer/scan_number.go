package lexer

import (
	"strings"

	"compsim/internal/token"
)

// Поддержка: 0x1F, 0o17, 0b101, 017 (legacy octal), 123, 1.5, 1., .5, 1e-3, 1.0e+10
// и однобуквенный суффикс (10L, 2.5f) для языков, где он разрешён.
// Префиксные формы пробуются первыми; форма без цифр после префикса
// ("0x") не считается числом — сканер возвращается к десятичной "0".
// Суффикс допускается только у десятичной формы.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	ng := lx.profile.Number

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		var digit func(byte) bool
		switch {
		case ng.Hex && (b1 == 'x' || b1 == 'X'):
			digit = isHex
		case ng.PrefixOctal && (b1 == 'o' || b1 == 'O'):
			digit = isOct
		case ng.Binary && (b1 == 'b' || b1 == 'B'):
			digit = isBin
		}
		if digit != nil {
			lx.cursor.Advance(2)
			if digit(lx.cursor.Peek()) {
				for digit(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				return lx.emit(token.Number, start)
			}
			lx.cursor.Reset(start)
		}
		if ng.LegacyOctal && isOct(b1) {
			lx.cursor.Bump()
			for isOct(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.Number, start)
		}
	}

	// десятичная целая часть и дробь: \d+\.?\d* | \.\d+
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// экспонента только если за ней есть цифры
	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			lx.cursor.Reset(mark)
		}
	}

	if ng.Suffixes != "" && !lx.cursor.EOF() && strings.IndexByte(ng.Suffixes, lx.cursor.Peek()) >= 0 {
		lx.cursor.Bump()
	}
	return lx.emit(token.Number, start)
}
