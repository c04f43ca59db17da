// Package trace records what the compsim pipeline is doing: which stage runs
// for which file and how long it took.
//
// Enable tracing via command-line flags:
//
//	compsim compile --trace=- --trace-level=phase main.py
//
// Tracers travel through the pipeline in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", 0)
//	defer span.End("")
//
// Levels: off, error, phase (driver and stage boundaries), detail (per file),
// debug (everything).
package trace
