package driver

import (
	"errors"
	"fmt"

	"compsim/internal/dialect"
	"compsim/internal/lang"
	"compsim/internal/observ"
	"compsim/internal/pipeline"
	"compsim/internal/source"
)

var (
	// ErrNoCode is returned when a request carries neither code nor a path.
	ErrNoCode = errors.New("code is required")
	// ErrSyntax is returned by gated stages when parsing reported errors.
	ErrSyntax = errors.New("syntax errors")
)

// Request describes one source to run through the pipeline.
type Request struct {
	// Code is the source text. When empty, Path is read from disk.
	Code string
	Path string
	// Language; lang.Invalid means "infer from Path".
	Language lang.Language
	// MaxDiagnostics caps parser diagnostics; 0 keeps all.
	MaxDiagnostics int
	// Declared seeds the semantic analyzer's symbol table.
	Declared []string
	// Force lets BuildTree and Analyze run on input the parser rejected.
	Force bool
	// Detect guesses the language from the text when neither Language nor
	// the Path extension names one.
	Detect bool

	Registry *lang.Registry
	Timer    *observ.Timer
	// Progress receives a working event as Compile enters each stage.
	Progress pipeline.ProgressSink
}

func (r *Request) enter(stage pipeline.Stage) {
	pipeline.Emit(r.Progress, pipeline.Event{File: r.Path, Stage: stage, Status: pipeline.StatusWorking})
}

func (r *Request) registry() *lang.Registry {
	if r.Registry != nil {
		return r.Registry
	}
	return lang.Default()
}

// source loads the request's text into a fresh FileSet and resolves the
// language profile. Missing code fails with ErrNoCode, an unknown language
// with *lang.ConfigError.
func (r *Request) source() (*source.FileSet, *source.File, *lang.Profile, error) {
	language := r.Language
	if language == lang.Invalid && r.Path != "" {
		if l, ok := lang.ForPath(r.Path); ok {
			language = l
		}
	}
	if language == lang.Invalid && !r.Detect {
		return nil, nil, nil, &lang.ConfigError{Tag: language.String()}
	}

	fs := source.NewFileSet()
	var fileID source.FileID
	switch {
	case r.Code != "":
		name := r.Path
		if name == "" {
			name = "<input>"
		}
		fileID = fs.AddVirtual(name, []byte(r.Code))
	case r.Path != "":
		var err error
		fileID, err = fs.Load(r.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load %s: %w", r.Path, err)
		}
		if len(fs.Get(fileID).Content) == 0 {
			return nil, nil, nil, fmt.Errorf("%s: %w", r.Path, ErrNoCode)
		}
	default:
		return nil, nil, nil, ErrNoCode
	}
	file := fs.Get(fileID)

	if language == lang.Invalid {
		if l, _, ok := dialect.Detect(file.Content[file.BodyStart():]); ok {
			language = l
		}
	}
	profile, err := r.registry().Lookup(language)
	if err != nil {
		return nil, nil, nil, err
	}
	return fs, file, profile, nil
}
