package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"contained", Span{File: 1, Start: 2, End: 10}, Span{File: 1, Start: 3, End: 4}, Span{File: 1, Start: 2, End: 10}},
		{"reversed", Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 0, End: 1}, Span{File: 1, Start: 0, End: 9}},
		{"other file ignored", Span{File: 1, Start: 8, End: 9}, Span{File: 2, Start: 0, End: 1}, Span{File: 1, Start: 8, End: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Zeroide(t *testing.T) {
	sp := Span{File: 3, Start: 5, End: 9}
	if got := sp.ZeroideToStart(); got != (Span{File: 3, Start: 5, End: 5}) || !got.Empty() {
		t.Errorf("ZeroideToStart() = %v", got)
	}
	if got := sp.ZeroideToEnd(); got != (Span{File: 3, Start: 9, End: 9}) || !got.Empty() {
		t.Errorf("ZeroideToEnd() = %v", got)
	}
	if sp.Len() != 4 {
		t.Errorf("Len() = %d, want 4", sp.Len())
	}
	if sp.String() != "3:5-9" {
		t.Errorf("String() = %q", sp.String())
	}
}
