package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_NoFrontMatter_ReturnsFullBody(t *testing.T) {
	input := []byte("<h1>Hello</h1>\n")

	data, body, err := Parse(input)
	require.NoError(t, err)
	require.Empty(t, data)
	require.Equal(t, input, body)
}

func TestParse_YAMLBlock_DecodesDataAndBody(t *testing.T) {
	input := []byte("---\ntitle: Home\ndest: out/index.html\n---\n<p>hi</p>\n")

	data, body, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, "Home", data["title"])
	require.Equal(t, "out/index.html", data["dest"])
	require.Equal(t, []byte("<p>hi</p>\n"), body)
}

func TestParse_EmptyBlock_YieldsEmptyMap(t *testing.T) {
	data, body, err := Parse([]byte("---\n---\nbody\n"))
	require.NoError(t, err)
	require.Empty(t, data)
	require.Equal(t, []byte("body\n"), body)
}

func TestParse_CRLF_DecodesDataAndBody(t *testing.T) {
	data, body, err := Parse([]byte("---\r\ntitle: A\r\n---\r\nbody\r\n"))
	require.NoError(t, err)
	require.Equal(t, "A", data["title"])
	require.Equal(t, []byte("body\r\n"), body)
}

func TestParse_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: A\nbody without close"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestParse_ClosingDelimiterAtEOF_DecodesData(t *testing.T) {
	data, body, err := Parse([]byte("---\ntitle: A\n---"))
	require.NoError(t, err)
	require.Equal(t, "A", data["title"])
	require.Empty(t, body)
}

func TestParse_MalformedYAML_ReturnsError(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	require.Error(t, err)
}
