package collect

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandGlobs expands a list of `**`-capable glob patterns into a
// sorted, de-duplicated list of file paths. Patterns prefixed with `!`
// exclude otherwise matched paths. Directories are never returned, and
// a pattern matching nothing is not an error.
func ExpandGlobs(patterns []string) ([]string, error) {
	var includes, excludes []string
	for _, p := range patterns {
		if len(p) > 0 && p[0] == '!' {
			excludes = append(excludes, p[1:])
		} else {
			includes = append(includes, p)
		}
	}

	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range includes {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
	next:
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			for _, ex := range excludes {
				ok, err := doublestar.PathMatch(ex, m)
				if err != nil {
					return nil, fmt.Errorf("glob %q: %w", ex, err)
				}
				if ok {
					continue next
				}
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	// Glob match order is the scan order; sort for determinism across
	// platforms.
	sort.Strings(files)
	return files, nil
}
