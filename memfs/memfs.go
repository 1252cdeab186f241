// Package memfs provides an in-memory implementation of the provider
// interfaces consumed by the abspath handler, for unit tests that
// should not touch a real disk. It returns the same errno values as the
// operating system would, so error classification behaves identically.
package memfs

import (
	"errors"
	"io/fs"
	"os"
	gopath "path"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// maxLinkDepth bounds symlink chain resolution.
const maxLinkDepth = 40

// FS is an in-memory filesystem keyed by normalized absolute paths.
// The maps may be inspected and manipulated directly by tests; the
// Add* helpers create any missing parent directories along the way.
type FS struct {
	Files    map[string][]byte
	Dirs     map[string]bool
	Symlinks map[string]string
	Modes    map[string]fs.FileMode
	WorkDir  string
	HomeDir  string

	tempSeq int
}

// New returns an empty FS containing only the root directory.
func New() *FS {
	return &FS{
		Files:    make(map[string][]byte),
		Dirs:     map[string]bool{"/": true},
		Symlinks: make(map[string]string),
		Modes:    make(map[string]fs.FileMode),
		WorkDir:  "/",
		HomeDir:  "/home/test",
	}
}

// AddDir creates a directory and all missing parents.
func (m *FS) AddDir(path string) {
	path = gopath.Clean(path)
	for path != "/" {
		m.Dirs[path] = true
		path = gopath.Dir(path)
	}
}

// AddFile stores a file with the given content, creating parents.
func (m *FS) AddFile(path string, content string) {
	path = gopath.Clean(path)
	m.AddDir(gopath.Dir(path))
	m.Files[path] = []byte(content)
}

// AddLink stores a symlink with the given raw target, creating parents.
// The target may be relative; it is kept verbatim.
func (m *FS) AddLink(path string, target string) {
	path = gopath.Clean(path)
	m.AddDir(gopath.Dir(path))
	m.Symlinks[path] = target
}

// resolve follows symlink chains on the final path component.
func (m *FS) resolve(name string) string {
	name = gopath.Clean(name)

	for i := 0; i < maxLinkDepth; i++ {
		target, ok := m.Symlinks[name]
		if !ok {
			return name
		}
		if strings.HasPrefix(target, "/") {
			name = gopath.Clean(target)
		} else {
			name = gopath.Clean(gopath.Dir(name) + "/" + target)
		}
	}

	return name
}

// lexists reports whether any entry exists at name, without following a
// symlink at the final component.
func (m *FS) lexists(name string) bool {
	if _, ok := m.Files[name]; ok {
		return true
	}
	if _, ok := m.Symlinks[name]; ok {
		return true
	}

	return m.Dirs[name]
}

// children returns the sorted child basenames of dir.
func (m *FS) children(dir string) []string {
	seen := make(map[string]bool)
	collect := func(name string) {
		if name != "/" && gopath.Dir(name) == dir {
			seen[gopath.Base(name)] = true
		}
	}

	for name := range m.Files {
		collect(name)
	}
	for name := range m.Dirs {
		collect(name)
	}
	for name := range m.Symlinks {
		collect(name)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (m *FS) infoAt(name string) (os.FileInfo, error) {
	if data, ok := m.Files[name]; ok {
		mode := fs.FileMode(0o644)
		if stored, ok := m.Modes[name]; ok {
			mode = stored
		}

		return &fileInfo{name: gopath.Base(name), size: int64(len(data)), mode: mode}, nil
	}
	if m.Dirs[name] {
		mode := fs.ModeDir | 0o755
		if stored, ok := m.Modes[name]; ok {
			mode = fs.ModeDir | stored
		}

		return &fileInfo{name: gopath.Base(name), mode: mode}, nil
	}

	return nil, unix.ENOENT
}

// Stat follows symlinks on the final component, like [os.Stat].
func (m *FS) Stat(name string) (os.FileInfo, error) {
	return m.infoAt(m.resolve(name))
}

// Lstat does not follow a symlink at the final component, like [os.Lstat].
func (m *FS) Lstat(name string) (os.FileInfo, error) {
	name = gopath.Clean(name)
	if _, ok := m.Symlinks[name]; ok {
		return &fileInfo{name: gopath.Base(name), mode: fs.ModeSymlink | 0o777}, nil
	}

	return m.infoAt(name)
}

// Readlink returns the raw stored target of a symlink.
func (m *FS) Readlink(name string) (string, error) {
	name = gopath.Clean(name)
	if target, ok := m.Symlinks[name]; ok {
		return target, nil
	}
	if m.lexists(name) {
		return "", unix.EINVAL
	}

	return "", unix.ENOENT
}

// ReadDir enumerates a directory, sorted by name.
func (m *FS) ReadDir(name string) ([]os.DirEntry, error) {
	name = m.resolve(name)
	if !m.Dirs[name] {
		if m.lexists(name) {
			return nil, unix.ENOTDIR
		}

		return nil, unix.ENOENT
	}

	names := m.children(name)
	entries := make([]os.DirEntry, 0, len(names))
	for _, base := range names {
		info, err := m.Lstat(gopath.Clean(name + "/" + base))
		if err != nil {
			return nil, err
		}
		entries = append(entries, &dirEntry{info: info})
	}

	return entries, nil
}

// ReadFile returns a copy of the file content, following symlinks.
func (m *FS) ReadFile(name string) ([]byte, error) {
	name = m.resolve(name)
	if data, ok := m.Files[name]; ok {
		out := make([]byte, len(data))
		copy(out, data)

		return out, nil
	}
	if m.Dirs[name] {
		return nil, unix.EISDIR
	}

	return nil, unix.ENOENT
}

// WriteFile stores content at name, following symlinks. The parent
// directory must exist.
func (m *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	name = m.resolve(name)
	if m.Dirs[name] {
		return unix.EISDIR
	}
	if !m.Dirs[gopath.Dir(name)] {
		return unix.ENOENT
	}

	if _, ok := m.Files[name]; !ok {
		m.Modes[name] = perm
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.Files[name] = stored

	return nil
}

// Remove deletes a single entry, without following symlinks. A
// non-empty directory fails with ENOTEMPTY.
func (m *FS) Remove(name string) error {
	name = gopath.Clean(name)

	if _, ok := m.Symlinks[name]; ok {
		delete(m.Symlinks, name)

		return nil
	}
	if _, ok := m.Files[name]; ok {
		delete(m.Files, name)
		delete(m.Modes, name)

		return nil
	}
	if m.Dirs[name] {
		if len(m.children(name)) > 0 {
			return unix.ENOTEMPTY
		}
		delete(m.Dirs, name)
		delete(m.Modes, name)

		return nil
	}

	return unix.ENOENT
}

// RemoveAll deletes an entry and everything below it; an absent entry
// is a no-op.
func (m *FS) RemoveAll(name string) error {
	name = gopath.Clean(name)
	prefix := name + "/"

	for k := range m.Files {
		if k == name || strings.HasPrefix(k, prefix) {
			delete(m.Files, k)
		}
	}
	for k := range m.Dirs {
		if k == name || strings.HasPrefix(k, prefix) {
			delete(m.Dirs, k)
		}
	}
	for k := range m.Symlinks {
		if k == name || strings.HasPrefix(k, prefix) {
			delete(m.Symlinks, k)
		}
	}
	for k := range m.Modes {
		if k == name || strings.HasPrefix(k, prefix) {
			delete(m.Modes, k)
		}
	}

	return nil
}

// Rename moves an entry, overwriting an existing file destination but
// refusing an existing directory destination.
func (m *FS) Rename(oldpath, newpath string) error {
	oldpath = gopath.Clean(oldpath)
	newpath = gopath.Clean(newpath)

	if !m.lexists(oldpath) {
		return unix.ENOENT
	}
	if !m.Dirs[gopath.Dir(newpath)] {
		return unix.ENOENT
	}
	if m.Dirs[newpath] && oldpath != newpath {
		return unix.EEXIST
	}

	if oldpath == newpath {
		return nil
	}

	if target, ok := m.Symlinks[oldpath]; ok {
		delete(m.Symlinks, oldpath)
		delete(m.Files, newpath)
		delete(m.Modes, newpath)
		m.Symlinks[newpath] = target

		return nil
	}
	if data, ok := m.Files[oldpath]; ok {
		delete(m.Files, oldpath)
		delete(m.Symlinks, newpath)
		delete(m.Modes, newpath)
		m.Files[newpath] = data
		if mode, ok := m.Modes[oldpath]; ok {
			delete(m.Modes, oldpath)
			m.Modes[newpath] = mode
		}

		return nil
	}

	// Directory: move the whole subtree.
	m.rewritePrefix(oldpath, newpath)

	return nil
}

func (m *FS) rewritePrefix(oldpath, newpath string) {
	prefix := oldpath + "/"
	rewrite := func(name string) string {
		return newpath + strings.TrimPrefix(name, oldpath)
	}

	for name, data := range m.Files {
		if strings.HasPrefix(name, prefix) {
			delete(m.Files, name)
			m.Files[rewrite(name)] = data
		}
	}
	for name, target := range m.Symlinks {
		if strings.HasPrefix(name, prefix) {
			delete(m.Symlinks, name)
			m.Symlinks[rewrite(name)] = target
		}
	}
	for name := range m.Dirs {
		if name == oldpath || strings.HasPrefix(name, prefix) {
			delete(m.Dirs, name)
			m.Dirs[rewrite(name)] = true
		}
	}
	for name, mode := range m.Modes {
		if name == oldpath || strings.HasPrefix(name, prefix) {
			delete(m.Modes, name)
			m.Modes[rewrite(name)] = mode
		}
	}
}

// MkdirAll creates a directory and all missing parents; an existing
// non-directory along the chain fails with ENOTDIR.
func (m *FS) MkdirAll(path string, perm os.FileMode) error {
	path = gopath.Clean(path)

	var prefixes []string
	for p := path; p != "/"; p = gopath.Dir(p) {
		prefixes = append([]string{p}, prefixes...)
	}

	for _, p := range prefixes {
		if m.Dirs[p] {
			continue
		}
		if m.lexists(p) {
			return unix.ENOTDIR
		}
		m.Dirs[p] = true
		m.Modes[p] = perm
	}

	return nil
}

// MkdirTemp creates a uniquely named directory under dir, defaulting to
// "/tmp" when dir is empty.
func (m *FS) MkdirTemp(dir, pattern string) (string, error) {
	if dir == "" {
		dir = "/tmp"
	}
	if err := m.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	m.tempSeq++
	suffix := strconv.Itoa(m.tempSeq)

	name := pattern + suffix
	if i := strings.LastIndex(pattern, "*"); i >= 0 {
		name = pattern[:i] + suffix + pattern[i+1:]
	}

	path := gopath.Clean(dir + "/" + name)
	m.Dirs[path] = true

	return path, nil
}

// Getwd returns the configured working directory.
func (m *FS) Getwd() (string, error) {
	return m.WorkDir, nil
}

// UserHomeDir returns the configured home directory, or an error when
// none is set, mirroring an absent $HOME.
func (m *FS) UserHomeDir() (string, error) {
	if m.HomeDir == "" {
		return "", errors.New("$HOME is not defined")
	}

	return m.HomeDir, nil
}

// Mkdir creates exactly one directory level.
func (m *FS) Mkdir(path string, mode uint32) error {
	path = gopath.Clean(path)

	if m.lexists(path) {
		return unix.EEXIST
	}
	if !m.Dirs[gopath.Dir(path)] {
		return unix.ENOENT
	}

	m.Dirs[path] = true
	m.Modes[path] = fs.FileMode(mode)

	return nil
}

// Chmod sets permission bits, following symlinks.
func (m *FS) Chmod(path string, mode uint32) error {
	path = m.resolve(path)
	if !m.lexists(path) {
		return unix.ENOENT
	}

	m.Modes[path] = fs.FileMode(mode) & fs.ModePerm

	return nil
}

// Symlink stores a symlink at newpath with the raw target oldpath,
// which may be relative.
func (m *FS) Symlink(oldpath, newpath string) error {
	newpath = gopath.Clean(newpath)

	if m.lexists(newpath) {
		return unix.EEXIST
	}
	if !m.Dirs[gopath.Dir(newpath)] {
		return unix.ENOENT
	}

	m.Symlinks[newpath] = oldpath

	return nil
}

type fileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.size }
func (fi *fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *fileInfo) ModTime() time.Time { return time.Time{} }
func (fi *fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *fileInfo) Sys() any           { return nil }

type dirEntry struct {
	info os.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (os.FileInfo, error) { return d.info, nil }
