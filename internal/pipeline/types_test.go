package pipeline

import "testing"

func TestStageOrder(t *testing.T) {
	if StageTokenization.Ord() != 0 || StageComplete.Ord() != len(Stages)-1 {
		t.Fatalf("unexpected order")
	}
	if StageParsing.Ord() >= StageSemanticAnalysis.Ord() {
		t.Fatalf("parsing must precede analysis")
	}
	if _, err := ParseStage("linking"); err == nil {
		t.Fatalf("expected error")
	}
	if st, err := ParseStage("ast_generation"); err != nil || st != StageASTGeneration {
		t.Fatalf("parse: %v %v", st, err)
	}
}

func TestSinks(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ChannelSink{Ch: ch}, Event{File: "a.py", Status: StatusDone})
	if ev := <-ch; ev.File != "a.py" {
		t.Fatalf("event = %+v", ev)
	}
	var got []Event
	Emit(SinkFunc(func(e Event) { got = append(got, e) }), Event{Status: StatusQueued})
	Emit(nil, Event{})
	ChannelSink{}.OnEvent(Event{})
	if len(got) != 1 {
		t.Fatalf("got %d events", len(got))
	}
}
