package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"pokepipeline/lib/pokeapi"

	"go.opentelemetry.io/otel/codes"
)

type Stage string

const (
	StageExtract   Stage = "extract"
	StageTransform Stage = "transform"
	StageLoad      Stage = "load"
)

// StageError reports which pipeline stage a run died in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline failed during %s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type State int

const (
	StateStart State = iota
	StateExtracted
	StateTransformed
	StateLoaded
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateExtracted:
		return "extracted"
	case StateTransformed:
		return "transformed"
	case StateLoaded:
		return "loaded"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

type RunOptions struct {
	Client *pokeapi.Client
	DB     *sql.DB
	Limit  int
}

type RunResult struct {
	State   State
	Pokemon int
	Types   int
	Links   int
}

// Run drives the pipeline start -> extracted -> transformed -> loaded
// -> done, one stage at a time. Any stage error moves the run to the
// terminal failed state; there are no retries. An extraction that
// produces no records at all also fails the run.
func Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	result := RunResult{State: StateStart}
	fail := func(stage Stage, err error) (RunResult, error) {
		result.State = StateFailed
		serr := &StageError{Stage: stage, Err: err}
		span.RecordError(serr)
		span.SetStatus(codes.Error, string(stage))
		slog.ErrorContext(ctx, "pipeline failed", "stage", stage, "err", err)
		return result, serr
	}

	raw, err := Extract(ctx, opts.Client, opts.Limit)
	if err != nil {
		return fail(StageExtract, err)
	}
	if len(raw) == 0 {
		return fail(StageExtract, fmt.Errorf("no raw data extracted"))
	}
	result.State = StateExtracted
	slog.InfoContext(ctx, "pipeline state", "state", result.State, "raw", len(raw))

	ds, err := Transform(ctx, raw)
	if err != nil {
		return fail(StageTransform, err)
	}
	result.State = StateTransformed
	result.Pokemon = len(ds.Pokemon)
	result.Types = len(ds.Types)
	result.Links = len(ds.Links)
	slog.InfoContext(
		ctx, "pipeline state",
		"state", result.State,
		"pokemon", result.Pokemon,
		"types", result.Types,
	)

	err = Load(ctx, opts.DB, ds)
	if err != nil {
		return fail(StageLoad, err)
	}
	result.State = StateLoaded
	slog.InfoContext(ctx, "pipeline state", "state", result.State)

	result.State = StateDone
	return result, nil
}
