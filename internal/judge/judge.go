package judge

import (
	"context"
	"errors"
)

// Judge0 status ids the grader cares about. Anything above StatusAccepted
// that is not StatusCompileError is treated as a runtime failure.
const (
	StatusAccepted     int64 = 3
	StatusCompileError int64 = 6
)

// ErrUnreachable is reported when the judge service could not complete the
// request: network failure, deadline exceeded, or an unparseable response.
// The client never synthesizes an Outcome in that situation.
var ErrUnreachable = errors.New("judge engine unreachable")

// Request is one execution order for the judge service. Expected output is
// deliberately absent: correctness comparison happens locally, the judge is
// only asked to run the program and report what happened.
type Request struct {
	SourceCode string `json:"source_code"`
	LanguageID int64  `json:"language_id"`
	Stdin      string `json:"stdin"`

	CpuTimeLimit float64 `json:"cpu_time_limit"` // seconds
	MemoryLimit  int64   `json:"memory_limit"`   // kibibytes
}

// Outcome is the terminal result of one execution.
type Outcome struct {
	StatusID          int64
	StatusDescription string

	Stdout        string
	Stderr        string
	CompileOutput string
}

// Client is the capability the evaluator holds over the judge service.
// Implementations block until the judge responds or the deadline fires.
type Client interface {
	Execute(ctx context.Context, req Request) (*Outcome, error)
}
