package ast

import "testing"

func TestArenaOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must be empty")
	}
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("ids = %d, %d", first, second)
	}
	if *a.Get(2) != 20 || a.Get(3) != nil {
		t.Fatalf("unexpected lookup")
	}
	if a.Len() != 2 || len(a.Slice()) != 2 {
		t.Fatalf("len = %d", a.Len())
	}
}

func TestBinaryOpOf(t *testing.T) {
	for _, text := range []string{"+", "-", "*", "/"} {
		op, ok := binaryOpOf(text)
		if !ok || op.String() != text {
			t.Fatalf("%q -> %v %v", text, op, ok)
		}
	}
	if _, ok := binaryOpOf("%"); ok {
		t.Fatalf("%% is not a tree operator")
	}
}
