package lexer

import (
	"testing"

	"compsim/internal/source"
)

func newCursor(content string) Cursor {
	fs := source.NewFileSet()
	return NewCursor(fs.Get(fs.AddVirtual("cursor.py", []byte(content))))
}

// TestBumpToEnd проверяет Peek/Bump и поведение на конце ввода.
func TestBumpToEnd(t *testing.T) {
	c := newCursor("a\n")
	for _, want := range []byte{'a', '\n'} {
		if c.EOF() || c.Peek() != want {
			t.Fatalf("Peek() = %q, EOF() = %v; want %q", c.Peek(), c.EOF(), want)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("cursor must stay at end of input")
	}
}

// TestLookahead covers the two- and three-byte windows used for comments,
// number prefixes and triple quotes.
func TestLookahead(t *testing.T) {
	c := newCursor(`"""x`)
	if b0, b1, b2, ok := c.Peek3(); !ok || b0 != '"' || b1 != '"' || b2 != '"' {
		t.Fatalf("Peek3() = %q %q %q %v", b0, b1, b2, ok)
	}
	c.Advance(2)
	if b0, b1, ok := c.Peek2(); !ok || b0 != '"' || b1 != 'x' {
		t.Fatalf("Peek2() = %q %q %v", b0, b1, ok)
	}
	if _, _, _, ok := c.Peek3(); ok {
		t.Error("Peek3 must fail with two bytes left")
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 must fail with one byte left")
	}
}

// TestRestAndAdvance проверяет окно для операторов: Rest отдаёт непрочитанный
// хвост, Advance не выходит за Limit.
func TestRestAndAdvance(t *testing.T) {
	c := newCursor("**=1")
	if string(c.Rest()) != "**=1" {
		t.Fatalf("Rest() = %q", c.Rest())
	}
	start := c.Mark()
	c.Advance(3)
	if sp := c.SpanFrom(start); sp.Start != 0 || sp.End != 3 {
		t.Errorf("SpanFrom = %d..%d, want 0..3", sp.Start, sp.End)
	}
	if string(c.Rest()) != "1" {
		t.Errorf("Rest() after Advance(3) = %q", c.Rest())
	}

	c.Limit = 3
	c.Reset(start)
	if string(c.Rest()) != "**=" {
		t.Errorf("Rest() with Limit = %q", c.Rest())
	}
	c.Advance(10)
	if !c.EOF() || c.Off != 3 {
		t.Errorf("Advance past Limit: Off = %d", c.Off)
	}
}

// TestSpanResolvesRuneColumns ставит метки вокруг двухбайтовых символов.
func TestSpanResolvesRuneColumns(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("utf.py", []byte("α\nβγ")))
	c := NewCursor(file)

	c.Advance(3) // "α\n"
	mark := c.Mark()
	c.Advance(2)
	sp := c.SpanFrom(mark)
	start, end := fs.Resolve(sp)
	if start != (source.LineCol{Line: 2, Col: 1}) || end != (source.LineCol{Line: 2, Col: 2}) {
		t.Errorf("Resolve(β) = %+v..%+v", start, end)
	}
}

func TestCursorSkipsBOM(t *testing.T) {
	c := newCursor("\uFEFF#x")
	if c.Off != 3 || c.Peek() != '#' {
		t.Fatalf("Off = %d, Peek() = %q", c.Off, c.Peek())
	}
	if !c.AtLineStart() {
		t.Error("BOM must not hide the line start")
	}
}

// TestAtLineStart проверяет определение начала строки для директив
func TestAtLineStart(t *testing.T) {
	c := newCursor("  #a x\r\n\t#b")

	if !c.AtLineStart() {
		t.Error("Expected line start at offset 0")
	}
	c.Advance(2)
	if !c.AtLineStart() {
		t.Error("Expected line start after leading blanks")
	}
	c.Advance(3) // "#a "
	if c.AtLineStart() {
		t.Error("Expected no line start after a token")
	}
	c.Advance(4) // "x\r\n\t"
	if !c.AtLineStart() {
		t.Error("Expected line start on second line")
	}
	c.Advance(100)
	if !c.EOF() {
		t.Error("Advance must stop at the end of input")
	}
}
