package driver

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"compsim/internal/lang"
	"compsim/internal/observ"
	"compsim/internal/pipeline"
	"compsim/internal/trace"
)

// BatchOptions configures CompileFiles.
type BatchOptions struct {
	// Template is copied for every file; its Path and Code are replaced.
	Template Request
	// Jobs limits parallel pipelines; <= 0 means GOMAXPROCS.
	Jobs     int
	Progress pipeline.ProgressSink
}

// FileOutcome is one entry of a batch; Err holds the per-file failure
// (load error, unsupported extension, tokenizer error).
type FileOutcome struct {
	Path    string
	Outcome *Outcome
	Err     error
}

// CompileFiles runs Compile for every path in parallel. Results are in input
// order. Per-file failures are recorded in FileOutcome.Err; the returned
// error is only set when ctx is cancelled.
func CompileFiles(ctx context.Context, paths []string, opts BatchOptions) ([]FileOutcome, error) {
	results := make([]FileOutcome, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	t := trace.FromContext(ctx)
	root := trace.Begin(t, trace.ScopeDriver, "batch", trace.ParentFrom(ctx))
	defer root.End("")
	ctx = trace.WithParent(ctx, root)

	for _, path := range paths {
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageTokenization, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			// отмена проверяется между файлами
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = compileOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func compileOne(ctx context.Context, path string, opts BatchOptions) FileOutcome {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file:"+path, trace.ParentFrom(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span)

	req := opts.Template
	req.Path = path
	req.Code = ""
	if req.Language == lang.Invalid {
		if l, ok := lang.ForPath(path); ok {
			req.Language = l
		}
	}
	if req.Timer == nil {
		req.Timer = observ.NewTimer()
	}

	req.Progress = opts.Progress
	started := req.Timer.Begin("file")
	out, err := Compile(ctx, &req)
	req.Timer.End(started, path)

	res := FileOutcome{Path: path, Outcome: out, Err: err}
	ev := pipeline.Event{File: path, Status: pipeline.StatusDone, Err: err}
	if out != nil {
		ev.Stage = out.Stage
	}
	if err != nil || out.Failed() {
		ev.Status = pipeline.StatusError
		if err == nil {
			ev.Err = errors.New(string(out.Stage) + " failed")
		}
	}
	pipeline.Emit(opts.Progress, ev)
	return res
}
