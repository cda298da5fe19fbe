package grader

import (
	"context"
	"log/slog"
	"strings"

	"github.com/genzipher/grader/internal/judge"
	"github.com/genzipher/grader/internal/languages"
	"github.com/genzipher/grader/internal/testcase"
)

// MaxCpuTimeSec is a hard ceiling on the per-case cpu time limit sent to the
// judge, independent of what the challenge declares. The judge service
// rejects (or misbehaves on) limits above it.
const MaxCpuTimeSec = 10.0

// Defaults applied when a challenge carries non-positive limits.
const (
	DefaultTimeLimSec = 1.0
	DefaultMemLimKiB  = 128000
)

// Submission is one user program to grade. Immutable.
type Submission struct {
	Code       string
	LanguageID int64 // 0 means unspecified, graded as languages.DefaultID
}

// Challenge is the grading-relevant slice of a challenge's configuration:
// the raw test-case blob and the declared resource limits.
type Challenge struct {
	TestCases  string  // JSON list of {"input": ..., "output": ...}
	TimeLimSec float64 // seconds
	MemLimKiB  int64   // kibibytes
}

// Verdict is the terminal result of grading one submission.
type Verdict struct {
	Correct bool
	Message string
}

// Grader drives the judge once per test case, in order, and short-circuits
// on the first case that does not pass. Cases are never dispatched
// concurrently: ordering decides which failure is reported, and parallel
// dispatch would multiply load on the shared judge service.
type Grader struct {
	judge  judge.Client
	logger *slog.Logger
}

func New(judgeClient judge.Client) *Grader {
	return &Grader{
		judge:  judgeClient,
		logger: slog.Default(),
	}
}

// Grade evaluates subm against ch's test cases and returns the verdict.
// Every reachable path yields a Verdict; judge transport failures are folded
// into a generic unreachable verdict and logged with detail here.
// prog may be nil.
func (g *Grader) Grade(ctx context.Context, subm Submission, ch Challenge, prog Progress) Verdict {
	if prog == nil {
		prog = NopProgress{}
	}

	cases, err := testcase.Load(ch.TestCases)
	if err != nil {
		g.logger.Warn("test case configuration rejected", "error", err)
		v := verdictConfigError(err)
		prog.FinishGrading(v)
		return v
	}

	req := g.buildRequest(subm, ch)
	prog.StartGrading(len(cases))

	for i, tc := range cases {
		num := i + 1 // failure messages are 1-based
		prog.ReachCase(num, tc.Input)

		req.Stdin = tc.Input
		outcome, err := g.judge.Execute(ctx, req)
		if err != nil {
			g.logger.Error("judge dispatch failed", "case", num, "error", err)
			v := verdictUnreachable()
			prog.FinishGrading(v)
			return v
		}

		v, pass := classify(num, tc, outcome)
		prog.FinishCase(num, pass)
		if !pass {
			prog.FinishGrading(v)
			return v
		}
	}

	v := verdictCorrect()
	prog.FinishGrading(v)
	return v
}

// buildRequest assembles the per-case judge request, minus stdin. The source
// is sanitized (non-breaking spaces become ordinary spaces, they crash
// judge-side parsers while looking identical in an editor) and the declared
// time limit is clamped to MaxCpuTimeSec.
func (g *Grader) buildRequest(subm Submission, ch Challenge) judge.Request {
	langId := subm.LanguageID
	if langId == 0 {
		langId = languages.DefaultID
	}

	timeLim := ch.TimeLimSec
	if timeLim <= 0 {
		timeLim = DefaultTimeLimSec
	}
	if timeLim > MaxCpuTimeSec {
		timeLim = MaxCpuTimeSec
	}

	memLim := ch.MemLimKiB
	if memLim <= 0 {
		memLim = DefaultMemLimKiB
	}

	return judge.Request{
		SourceCode:   strings.ReplaceAll(subm.Code, "\u00a0", " "),
		LanguageID:   langId,
		CpuTimeLimit: timeLim,
		MemoryLimit:  memLim,
	}
}

// classify maps one judge outcome onto the per-case state machine:
// CompileError, RuntimeError, Mismatch or Pass. The status table is coarse
// on purpose: everything past "ran to completion" that is not a compile
// error reads as a runtime failure, with the judge's own description
// carried through (so a time-limit status still names itself).
func classify(num int, tc testcase.TestCase, outcome *judge.Outcome) (Verdict, bool) {
	if outcome.StatusID == judge.StatusCompileError {
		return verdictCompileError(outcome.CompileOutput), false
	}
	if outcome.StatusID > judge.StatusAccepted {
		return verdictRuntimeError(num, outcome.StatusDescription, outcome.Stderr), false
	}

	actual := strings.TrimSpace(outcome.Stdout)
	expected := strings.TrimSpace(tc.Output)
	if actual != expected {
		return verdictWrongAnswer(num, tc.Output, outcome.Stdout), false
	}
	return Verdict{}, true
}
