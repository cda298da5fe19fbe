package behave

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/genzipher/grader/internal/grader"
)

// Behaviour files describe grading scenarios runnable against a live judge:
// a challenge configuration, a submission, and the expected verdict.

// SpecChallenge describes the challenge block of a scenario
type SpecChallenge struct {
	TestCases  string  `toml:"test_cases"`
	TimeLimSec float64 `toml:"time_lim_sec"`
	MemLimKiB  int64   `toml:"mem_lim_kib"`
}

// SpecExpect describes the expected verdict of a scenario
type SpecExpect struct {
	Correct         bool   `toml:"correct"`
	MessageContains string `toml:"message_contains"`
}

type specScenario struct {
	Description string        `toml:"description"`
	Code        string        `toml:"code"`
	LanguageID  int64         `toml:"language_id"`
	Challenge   SpecChallenge `toml:"challenge"`
	Expect      SpecExpect    `toml:"expect"`
}

type specRoot struct {
	Scenarios []specScenario `toml:"scenarios"`
}

// Case is a runnable scenario converted from TOML
type Case struct {
	Name       string
	Uuid       string
	Submission grader.Submission
	Challenge  grader.Challenge
	Expect     SpecExpect
}

// Parse reads a behaviour TOML file and converts it to runnable cases.
func Parse(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behaviour file: %w", err)
	}
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse behaviour file: %w", err)
	}
	if len(root.Scenarios) == 0 {
		return nil, fmt.Errorf("behaviour file defines no scenarios")
	}

	cases := make([]Case, 0, len(root.Scenarios))
	for i, s := range root.Scenarios {
		name := s.Description
		if name == "" {
			name = fmt.Sprintf("scenario %d", i+1)
		}
		cases = append(cases, Case{
			Name: name,
			Uuid: uuid.New().String(),
			Submission: grader.Submission{
				Code:       s.Code,
				LanguageID: s.LanguageID,
			},
			Challenge: grader.Challenge{
				TestCases:  s.Challenge.TestCases,
				TimeLimSec: s.Challenge.TimeLimSec,
				MemLimKiB:  s.Challenge.MemLimKiB,
			},
			Expect: s.Expect,
		})
	}
	return cases, nil
}

// Run grades every case and compares verdicts against expectations. It
// returns an error when at least one scenario failed.
func Run(ctx context.Context, g *grader.Grader, cases []Case) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failures := 0
	for _, c := range cases {
		v := g.Grade(ctx, c.Submission, c.Challenge, nil)

		ok := v.Correct == c.Expect.Correct
		if ok && c.Expect.MessageContains != "" {
			ok = strings.Contains(v.Message, c.Expect.MessageContains)
		}

		if ok {
			fmt.Printf("%s %s\n", pass("PASS"), c.Name)
		} else {
			failures++
			fmt.Printf("%s %s\n", fail("FAIL"), c.Name)
			fmt.Printf("  expected correct=%v contains=%q\n", c.Expect.Correct, c.Expect.MessageContains)
			fmt.Printf("  got correct=%v message=%q\n", v.Correct, v.Message)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failures, len(cases))
	}
	return nil
}
