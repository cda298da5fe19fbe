package testcase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genzipher/grader/internal/testcase"
)

func TestLoadOrderedCases(t *testing.T) {
	cases, err := testcase.Load(`[
		{"input": "1 2", "output": "3"},
		{"input": "4 5", "output": "9"}
	]`)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, "1 2", cases[0].Input)
	require.Equal(t, "3", cases[0].Output)
	require.Equal(t, "4 5", cases[1].Input)
	require.Equal(t, "9", cases[1].Output)
}

func TestLoadMissingFieldsDefaultToEmpty(t *testing.T) {
	cases, err := testcase.Load(`[{"input": "only in"}, {"output": "only out"}, {}]`)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	require.Equal(t, "", cases[0].Output)
	require.Equal(t, "", cases[1].Input)
	require.Equal(t, testcase.TestCase{}, cases[2])
}

func TestLoadMalformed(t *testing.T) {
	for _, raw := range []string{
		``,
		`not json`,
		`{"input": "obj not list"}`,
		`[{"input": "unterminated"`,
	} {
		_, err := testcase.Load(raw)
		require.ErrorIs(t, err, testcase.ErrMalformed, "raw: %q", raw)
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, raw := range []string{`[]`, `null`} {
		_, err := testcase.Load(raw)
		require.ErrorIs(t, err, testcase.ErrEmpty, "raw: %q", raw)
	}
}
