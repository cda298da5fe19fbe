package behave_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genzipher/grader/internal/behave"
)

const sampleSuite = `
[[scenarios]]
description = "sum of two numbers"
code = '''
a, b = map(int, input().split())
print(a + b)
'''
language_id = 71

[scenarios.challenge]
test_cases = '[{"input": "1 2", "output": "3"}]'
time_lim_sec = 2.0
mem_lim_kib = 128000

[scenarios.expect]
correct = true
message_contains = "Correct"

[[scenarios]]
code = "print('x')"

[scenarios.challenge]
test_cases = "[]"

[scenarios.expect]
correct = false
message_contains = "No test cases defined"
`

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse(t *testing.T) {
	cases, err := behave.Parse(writeSuite(t, sampleSuite))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	first := cases[0]
	require.Equal(t, "sum of two numbers", first.Name)
	require.NotEmpty(t, first.Uuid)
	require.Equal(t, int64(71), first.Submission.LanguageID)
	require.Contains(t, first.Submission.Code, "print(a + b)")
	require.Equal(t, 2.0, first.Challenge.TimeLimSec)
	require.Equal(t, int64(128000), first.Challenge.MemLimKiB)
	require.True(t, first.Expect.Correct)

	// unnamed scenarios get a positional name
	require.Equal(t, "scenario 2", cases[1].Name)
	require.False(t, cases[1].Expect.Correct)
}

func TestParseRejectsEmptySuite(t *testing.T) {
	_, err := behave.Parse(writeSuite(t, "# nothing here"))
	require.Error(t, err)
}

func TestParseRejectsBadToml(t *testing.T) {
	_, err := behave.Parse(writeSuite(t, "[[scenarios"))
	require.Error(t, err)
}
