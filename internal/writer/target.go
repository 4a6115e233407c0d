package writer

import (
	"regexp"
	"strings"
)

// CompileTargets builds the anchored target allow-list regular expression
// from patterns. An empty patterns list means "no allow-list": every
// non-protected candidate is eligible, and CompileTargets returns a nil
// Regexp rather than one that matches nothing.
func CompileTargets(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	return regexp.Compile(`^(?:` + strings.Join(patterns, "|") + `)$`)
}
