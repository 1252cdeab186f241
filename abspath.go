// Package abspath provides a typed, always-normalized, always-absolute
// filesystem path value and conflict-aware operations on it.
//
// The pure path algebra (construction, composition, relative paths) lives
// on the [Path] value itself and never touches the operating system. All
// filesystem queries and mutations go through a [Handler], which operates
// on injected providers so callers can run the same code against the real
// operating system or an in-memory fake.
package abspath

import (
	"fmt"
	gopath "path"
	"strings"
)

// Path is an absolute, normalized filesystem location.
//
// The underlying string always starts with '/', contains no "." or ".."
// segments and no redundant separators, and carries no trailing slash
// except for [Root] itself. Two paths are equal exactly when their strings
// are equal; no inode-level canonicalization is performed beyond
// normalization. Paths are immutable values, every derivation returns a
// new Path.
type Path string

// Root is the filesystem root "/".
const Root = Path("/")

// New returns the Path for s, normalized. Redundant separators are
// collapsed, "." and ".." segments are resolved (".." clamps at the
// root), and any trailing slash is stripped except on the root itself.
// It fails with [ErrInvalidPath] if s is not absolute.
func New(s string) (Path, error) {
	if !strings.HasPrefix(s, "/") {
		return "", fmt.Errorf("(path-new) %w: %q", ErrInvalidPath, s)
	}

	return Path(gopath.Clean(s)), nil
}

// MustNew is [New] for known-good literals; it panics on invalid input.
func MustNew(s string) Path {
	p, err := New(s)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the normalized string form.
func (p Path) String() string {
	return string(p)
}

// segments splits p into its path segments; [Root] has none.
func (p Path) segments() []string {
	if p == Root {
		return nil
	}

	return strings.Split(strings.TrimPrefix(string(p), "/"), "/")
}
