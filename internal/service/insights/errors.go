package insights

import "fmt"

// Stage identifies which part of the pipeline a request failed in. Stages
// feed the failure metrics and structured logs; callers only ever see the
// generic message.
type Stage string

const (
	StageConfig        Stage = "config"
	StageValidation    Stage = "validation"
	StageTranscription Stage = "transcription"
	StageAnalysis      Stage = "analysis"
)

// Error wraps a pipeline failure with the stage it occurred in. All
// pipeline errors are terminal for the request; there are no retries.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, format string, args ...any) *Error {
	return &Error{Stage: stage, Err: fmt.Errorf(format, args...)}
}
