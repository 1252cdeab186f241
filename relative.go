package abspath

import (
	"fmt"
	"strings"
)

// RelativeTo returns the path that, written relative to base, reaches p.
// Only descent is supported: base must be an ancestor of p, or p itself,
// which yields the empty string. Any other base fails with
// [ErrNotASubpath]; there is no ".."-climbing.
//
// The ancestor check compares whole segments, so "/foo" is not an
// ancestor of "/foobar" even though it is a string prefix of it.
func (p Path) RelativeTo(base Path) (string, error) {
	baseSegs := base.segments()
	targetSegs := p.segments()

	if len(baseSegs) > len(targetSegs) {
		return "", fmt.Errorf("(path-rel) %w: %s is not under %s", ErrNotASubpath, p, base)
	}

	for i, seg := range baseSegs {
		if targetSegs[i] != seg {
			return "", fmt.Errorf("(path-rel) %w: %s is not under %s", ErrNotASubpath, p, base)
		}
	}

	return strings.Join(targetSegs[len(baseSegs):], "/"), nil
}
