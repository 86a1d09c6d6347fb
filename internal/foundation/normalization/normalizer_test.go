package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_MatchesCaseInsensitively(t *testing.T) {
	n := NewNormalizer(map[string]string{"json": "json", "text": "text"}, "text")

	require.Equal(t, "json", n.Normalize("JSON"))
	require.Equal(t, "json", n.Normalize("  json "))
}

func TestNormalize_UnknownValueFallsBackToDefault(t *testing.T) {
	n := NewNormalizer(map[string]string{"json": "json"}, "text")
	require.Equal(t, "text", n.Normalize("yaml"))
}

func TestNormalizeWithError_ListsValidOptions(t *testing.T) {
	n := NewNormalizer(map[string]int{"b": 2, "a": 1}, 0)

	_, err := n.NormalizeWithError("c")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[a b]")
}
