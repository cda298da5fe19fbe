package testcase

import (
	"encoding/json"
	"errors"
	"fmt"
)

// A challenge stores its test cases as a JSON list of records:
// [{"input": "1 2", "output": "3"}, ...]. Order is significant: it is the
// evaluation order, and failure messages refer to the 1-based position.

var (
	// ErrMalformed means the blob could not be parsed as a list of cases.
	ErrMalformed = errors.New("invalid test case configuration")
	// ErrEmpty means the blob parsed fine but defines zero cases. An empty
	// sequence is a rejected admin configuration, never an automatic pass.
	ErrEmpty = errors.New("no test cases defined")
)

type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Load parses the challenge's raw test-case blob. A case record may omit
// "input" or "output"; the missing field defaults to the empty string.
func Load(raw string) ([]TestCase, error) {
	var cases []TestCase
	if err := json.Unmarshal([]byte(raw), &cases); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(cases) == 0 {
		return nil, ErrEmpty
	}
	return cases, nil
}
