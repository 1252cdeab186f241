// Package syscalls provides the real operating system implementations
// of the provider interfaces consumed by the abspath handler.
package syscalls

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Lstat wraps around [os.Lstat].
func (*OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// ReadFile wraps around [os.ReadFile].
func (*OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile wraps around [os.WriteFile].
func (*OS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Remove wraps around [os.Remove].
func (*OS) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll wraps around [os.RemoveAll].
func (*OS) RemoveAll(name string) error {
	return os.RemoveAll(name)
}

// Rename wraps around [os.Rename].
func (*OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// MkdirAll wraps around [os.MkdirAll].
func (*OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// MkdirTemp wraps around [os.MkdirTemp].
func (*OS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

// Getwd wraps around [os.Getwd].
func (*OS) Getwd() (string, error) {
	return os.Getwd()
}

// UserHomeDir wraps around [os.UserHomeDir].
func (*OS) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

// Chmod wraps around [unix.Chmod].
func (*Unix) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

// Symlink wraps around [unix.Symlink].
func (*Unix) Symlink(oldpath, newpath string) error {
	return unix.Symlink(oldpath, newpath)
}
