package grader

import (
	"errors"
	"fmt"

	"github.com/genzipher/grader/internal/testcase"
)

// Terminal-state message formatting. Pure: no I/O, no side effects, so the
// text shown to a submitter stays independent of how the verdict travels.

const (
	msgCorrect         = "Correct! All test cases passed."
	msgUnreachable     = "Error: Judge Engine unreachable"
	msgMalformedConfig = "Error: Invalid Test Case Configuration by Admin"
	msgEmptyConfig     = "Error: No test cases defined"

	// shown when the judge reports a compile error without diagnostics
	msgUnknownSyntaxError = "Unknown syntax error"
)

func verdictCorrect() Verdict {
	return Verdict{Correct: true, Message: msgCorrect}
}

// verdictUnreachable deliberately reveals nothing about the transport
// failure; detail goes to the operator log.
func verdictUnreachable() Verdict {
	return Verdict{Correct: false, Message: msgUnreachable}
}

func verdictConfigError(err error) Verdict {
	if errors.Is(err, testcase.ErrEmpty) {
		return Verdict{Correct: false, Message: msgEmptyConfig}
	}
	return Verdict{Correct: false, Message: msgMalformedConfig}
}

func verdictCompileError(compileOutput string) Verdict {
	if compileOutput == "" {
		compileOutput = msgUnknownSyntaxError
	}
	return Verdict{
		Correct: false,
		Message: fmt.Sprintf("Compilation Error:\n%s", compileOutput),
	}
}

func verdictRuntimeError(num int, statusDesc string, stderr string) Verdict {
	if statusDesc == "" {
		statusDesc = "Runtime Error"
	}
	msg := fmt.Sprintf("Runtime Error on Case %d: %s", num, statusDesc)
	if stderr != "" {
		msg += "\n" + stderr
	}
	return Verdict{Correct: false, Message: msg}
}

func verdictWrongAnswer(num int, expected string, actual string) Verdict {
	return Verdict{
		Correct: false,
		Message: fmt.Sprintf("Failed Test Case %d.\nExpected:\n%s\n\nGot:\n%s", num, expected, actual),
	}
}
