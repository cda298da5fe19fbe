package languages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genzipher/grader/internal/languages"
)

func TestDefaultIsSupported(t *testing.T) {
	require.True(t, languages.Supported(languages.DefaultID))
	require.Equal(t, "Python (3.8.1)", languages.Name(languages.DefaultID))
}

func TestUnknownLanguage(t *testing.T) {
	require.False(t, languages.Supported(9999))
	require.Equal(t, "", languages.Name(9999))
}

func TestEveryLanguageCarriesHelloWorld(t *testing.T) {
	all := languages.All()
	require.NotEmpty(t, all)
	for _, l := range all {
		require.True(t, languages.Supported(l.ID))
		require.NotEmpty(t, l.Name)
		require.NotEmpty(t, l.HelloWorld)
	}
}
