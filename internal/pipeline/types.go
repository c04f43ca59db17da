package pipeline

import (
	"fmt"
	"time"
)

// Stage names a pipeline stage. The values are the ones stored in records
// and printed in JSON output.
type Stage string

const (
	StageTokenization     Stage = "tokenization"
	StageParsing          Stage = "parsing"
	StageASTGeneration    Stage = "ast_generation"
	StageSemanticAnalysis Stage = "semantic_analysis"
	// StageComplete means every stage ran and none reported errors.
	StageComplete Stage = "complete"
)

// Stages lists the stages in execution order.
var Stages = [...]Stage{StageTokenization, StageParsing, StageASTGeneration, StageSemanticAnalysis, StageComplete}

// Ord returns the position of s in Stages, or -1.
func (s Stage) Ord() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of Stages.
func (s Stage) Valid() bool { return s.Ord() >= 0 }

// ParseStage validates a stage name.
func ParseStage(s string) (Stage, error) {
	st := Stage(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown stage: %q", s)
	}
	return st, nil
}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the whole batch when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; batch workers emit from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) {
	if f != nil {
		f(evt)
	}
}

// Emit sends evt to sink when sink is non-nil.
func Emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
