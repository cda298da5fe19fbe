package termgath

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/genzipher/grader/internal/grader"
)

// TerminalGatherer prints grading progress for the one-shot CLI.
type TerminalGatherer struct {
	StartedAt time.Time
}

func New() *TerminalGatherer { return &TerminalGatherer{StartedAt: time.Now()} }

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	caseNum  = color.New(color.Bold).SprintfFunc()
)

func (t *TerminalGatherer) StartGrading(numCases int) {
	fmt.Printf("== Grading started: %d case(s) ==\n", numCases)
}

func (t *TerminalGatherer) ReachCase(num int, input string) {
	fmt.Printf("-> %s dispatched\n", caseNum("case %d", num))
}

func (t *TerminalGatherer) FinishCase(num int, passed bool) {
	if passed {
		fmt.Printf("<- %s %s\n", caseNum("case %d", num), passMark("pass"))
	} else {
		fmt.Printf("<- %s %s\n", caseNum("case %d", num), failMark("fail"))
	}
}

func (t *TerminalGatherer) FinishGrading(v grader.Verdict) {
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	if v.Correct {
		fmt.Printf("== %s in %s ==\n", passMark(v.Message), dur)
	} else {
		fmt.Printf("== Grading finished in %s ==\n%s\n", dur, failMark(v.Message))
	}
}
