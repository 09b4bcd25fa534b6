package lint

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a checker applies to the file at path.
type Matcher func(path string) bool

// SuffixMatcher matches paths ending in suffix exactly (case-sensitive).
// No normalisation is applied, so ".py" does not match "x.PY".
func SuffixMatcher(suffix string) Matcher {
	return func(path string) bool {
		return strings.HasSuffix(path, suffix)
	}
}

// GlobMatcher matches paths against a doublestar pattern such as
// "/src/**/*.py". It fails if the pattern is malformed.
func GlobMatcher(pattern string) (Matcher, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return func(path string) bool {
		ok, err := doublestar.PathMatch(pattern, path)
		return err == nil && ok
	}, nil
}
