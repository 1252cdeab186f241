package abspath

import (
	gopath "path"
	"strings"
)

// archiveSuffixes are compound extensions reported whole by
// [Path.Extname], since archive tooling treats them as one semantic
// suffix rather than just the final part.
var archiveSuffixes = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tar.zst"}

// Join appends parts to p, separated by '/', and normalizes the result.
// Joining nothing (or only empty strings) returns p unchanged.
//
// If the joined parts themselves form an absolute path, that path is
// returned and p is discarded entirely. Callers joining an absolute path
// onto a base almost always hold a bug on their side; discarding keeps
// that failure loud instead of silently nesting one absolute path under
// another.
func (p Path) Join(parts ...string) Path {
	joined := strings.Join(parts, "/")
	if joined == "" {
		return p
	}

	if strings.HasPrefix(joined, "/") {
		return Path(gopath.Clean(joined))
	}

	return Path(gopath.Clean(string(p) + "/" + joined))
}

// Parent returns p with its final segment stripped. The parent of
// [Root] is Root itself, the operation never underflows.
func (p Path) Parent() Path {
	return Path(gopath.Dir(string(p)))
}

// Basename returns the final segment of p.
func (p Path) Basename() string {
	return gopath.Base(string(p))
}

// Extname returns the extension of the final segment including the
// leading dot, with compound archive suffixes such as ".tar.gz"
// returned as a single unit. A segment without extension yields "".
func (p Path) Extname() string {
	name := p.Basename()

	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) && name != suffix {
			return suffix
		}
	}

	return gopath.Ext(name)
}
