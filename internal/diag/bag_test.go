package diag

import (
	"testing"

	"compsim/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	for i := range 3 {
		ReportError(r, SynUnexpectedToken, source.Span{Start: uint32(i)}, "x").Emit()
	}
	if b.Len() != 2 || !b.Full() {
		t.Fatalf("Len() = %d, Full() = %v; want 2, true", b.Len(), b.Full())
	}

	unlimited := NewBag(0)
	for range 100 {
		unlimited.Add(NewError(SynUnexpectedToken, source.Span{}, "x"))
	}
	if unlimited.Len() != 100 || unlimited.Full() {
		t.Fatalf("unlimited bag: Len() = %d, Full() = %v", unlimited.Len(), unlimited.Full())
	}
}

func TestBagSplit(t *testing.T) {
	b := NewBag(0)
	r := BagReporter{Bag: b}
	ReportWarning(r, SemaDivisionByZero, source.Span{Start: 4}, "Division by zero").Emit()
	ReportError(r, SemaUndefinedVariable, source.Span{Start: 0}, "Undefined variable: x").Emit()

	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected both errors and warnings")
	}
	errs, warns := b.Split()
	if len(errs) != 1 || errs[0].Code != SemaUndefinedVariable {
		t.Errorf("errors = %+v", errs)
	}
	if len(warns) != 1 || warns[0].Code != SemaDivisionByZero {
		t.Errorf("warnings = %+v", warns)
	}

	b.Sort()
	if b.Items()[0].Code != SemaUndefinedVariable {
		t.Errorf("Sort must order by span start, got %v first", b.Items()[0].Code.ID())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(0)
	rb := ReportError(BagReporter{Bag: b}, SynExpectColon, source.Span{}, "Expected ':' after function declaration").
		At(source.LineCol{Line: 1, Col: 9}).
		Expected(":", EndOfInput)
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	d := b.Items()[0]
	if d.Expected != ":" || d.Found != EndOfInput || d.Line != 1 || d.Column != 9 {
		t.Errorf("diagnostic = %+v", d)
	}
	var nilBuilder *ReportBuilder
	nilBuilder.At(source.LineCol{}).Expected("", "").Emit()
}

func TestCodeText(t *testing.T) {
	for _, c := range []Code{LexUnknownChar, SynExpectRBrace, SemaDivisionByZero, IOLoadFileError} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Code
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("%s: round trip gave %v, %v", text, back, err)
		}
	}
	if SemaUndefinedVariable.ID() != "SEM3001" {
		t.Errorf("ID() = %s", SemaUndefinedVariable.ID())
	}
}
