package abspath

import (
	"fmt"
	"os"
)

// osProvider wraps the portable operating system primitives consumed by
// the [Handler]; see [syscalls.OS] for the real implementation.
type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	Remove(name string) error
	RemoveAll(name string) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm os.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)
	Getwd() (string, error)
	UserHomeDir() (string, error)
}

// unixProvider wraps the Unix-specific primitives consumed by the
// [Handler]; see [syscalls.Unix] for the real implementation.
type unixProvider interface {
	Mkdir(path string, mode uint32) error
	Chmod(path string, mode uint32) error
	Symlink(oldpath, newpath string) error
}

// Handler performs filesystem operations on [Path] values through its
// injected providers. All operations are direct blocking calls onto the
// providers; the Handler holds no state of its own beyond them and is
// safe for concurrent use to the extent the providers are.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
}

// NewHandler returns a [Handler] operating through the given providers.
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		OSOps:   osOps,
		UnixOps: unixOps,
	}
}

// Cwd returns the process working directory as a [Path].
func (h *Handler) Cwd() (Path, error) {
	wd, err := h.OSOps.Getwd()
	if err != nil {
		return "", fmt.Errorf("(fs-cwd) %w: %w", ErrFilesystem, err)
	}

	return New(wd)
}

// Home returns the current user's home directory. It fails with
// [ErrUnsupportedPlatform] when the platform lookup is unavailable or
// the relevant environment variable is absent.
func (h *Handler) Home() (Path, error) {
	home, err := h.OSOps.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("(fs-home) %w: %w", ErrUnsupportedPlatform, err)
	}

	return New(home)
}

// MkTemp creates a fresh uniquely named temporary directory, using
// pattern for its name, and returns it as a [Path].
func (h *Handler) MkTemp(pattern string) (Path, error) {
	dir, err := h.OSOps.MkdirTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("(fs-mktemp) %w: %w", ErrFilesystem, err)
	}

	return New(dir)
}
