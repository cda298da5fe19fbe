package api_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genzipher/grader/api"
)

func TestTrimToRectKeepsSmallText(t *testing.T) {
	require.Equal(t, "", api.TrimToRect("", 3, 10))
	require.Equal(t, "ab\ncd", api.TrimToRect("ab\ncd", 3, 10))
}

func TestTrimToRectCutsWideLines(t *testing.T) {
	got := api.TrimToRect("abcdefghij", 3, 4)
	require.Equal(t, "abcd[...]", got)
}

func TestTrimToRectCutsTallText(t *testing.T) {
	got := api.TrimToRect("1\n2\n3\n4\n5", 2, 10)
	require.Equal(t, "1\n2\n[...]", got)
}

func TestStreamMessagesTrimPayloads(t *testing.T) {
	long := strings.Repeat("x", 500)
	msg := api.NewCaseReach("uuid", 1, long)
	require.Equal(t, api.CaseReachMsg, msg.MsgType)
	require.Equal(t, "uuid", msg.SubmUuid)
	require.LessOrEqual(t, len(msg.Input), api.MaxOutputWidth+len("[...]"))
}
