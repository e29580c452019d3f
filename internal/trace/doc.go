// Package trace provides a tracing subsystem for jslex runs.
//
// The trace package records when a run, a directory walk and each file start
// and finish, which helps to find slow inputs and hangs on large trees.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	jslex tokenize --trace=- --trace-level=detail ./src
//
// # Architecture
//
//   - nopTracer: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a run fails
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only the ring dump on failure
//   - LevelPhase: run and directory boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything including per-token points
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeFile, "lex:"+path, parentID)
//	defer span.End("")
package trace
