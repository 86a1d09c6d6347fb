// Package frontmatter splits `---` delimited YAML front matter from a
// source file's body and decodes it into a map.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a front
// matter block but never closes it.
var ErrMissingClosingDelimiter = errors.New("front matter: missing closing delimiter")

// Parse separates an optional leading YAML front matter block from the
// body and decodes it. Documents without a front matter block yield an
// empty map and the full input as body. CRLF line endings are
// tolerated.
func Parse(content []byte) (map[string]any, []byte, error) {
	raw, body, err := split(content)
	if err != nil {
		return nil, nil, err
	}
	data := map[string]any{}
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, nil, fmt.Errorf("front matter: %w", err)
		}
	}
	return data, body, nil
}

func split(content []byte) (raw, body []byte, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		// Empty block.
		return nil, rest[len(open):], nil
	}

	closing := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		// A final unterminated line may still close the block at EOF.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+len(nl)], nil, nil
		}
		return nil, nil, ErrMissingClosingDelimiter
	}

	return rest[:idx+len(nl)], rest[idx+len(closing):], nil
}
