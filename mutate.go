package abspath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// dirMode is the creation mode for directories, before umask.
const dirMode = 0o755

// Mv moves the filesystem entry at p to exactly to, returning the
// destination. Without force an existing destination fails with
// [ErrAlreadyExists], including the degenerate to == p self-move; the
// overwrite contract stays uniform instead of special-casing the no-op.
// With force the destination is overwritten, except that an existing
// directory still fails with [ErrIsADirectory].
func (h *Handler) Mv(p, to Path, force bool) (Path, error) {
	info, err := h.OSOps.Lstat(to.String())

	switch {
	case err == nil:
		if !force {
			return "", fmt.Errorf("(fs-mv) %w: %s", ErrAlreadyExists, to)
		}
		if info.IsDir() {
			return "", fmt.Errorf("(fs-mv) %w: %s", ErrIsADirectory, to)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("(fs-mv) %w: %w", ErrFilesystem, err)
	}

	if err := h.OSOps.Rename(p.String(), to.String()); err != nil {
		return "", fmt.Errorf("(fs-mv) %w: %w", ErrFilesystem, err)
	}

	return to, nil
}

// MvInto moves the entry at p into the directory into, keeping its
// basename, under the same overwrite contract as [Handler.Mv].
func (h *Handler) MvInto(p, into Path, force bool) (Path, error) {
	return h.Mv(p, into.Join(p.Basename()), force)
}

// Rm removes the entry at p. An absent path is a no-op. A non-empty
// directory fails with [ErrDirectoryNotEmpty]; use [Handler.RmTree]
// for recursive removal.
func (h *Handler) Rm(p Path) error {
	if err := h.OSOps.Remove(p.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if errors.Is(err, unix.ENOTEMPTY) {
			return fmt.Errorf("(fs-rm) %w: %s", ErrDirectoryNotEmpty, p)
		}

		return fmt.Errorf("(fs-rm) %w: %w", ErrFilesystem, err)
	}

	return nil
}

// RmTree removes p and everything below it. An absent path is a no-op.
func (h *Handler) RmTree(p Path) error {
	if err := h.OSOps.RemoveAll(p.String()); err != nil {
		return fmt.Errorf("(fs-rmtree) %w: %w", ErrFilesystem, err)
	}

	return nil
}

// Mkdir creates exactly one directory level at p. An existing directory
// is a no-op. An absent parent fails with [ErrNotFound], a non-directory
// entry already at p fails with [ErrAlreadyExists].
func (h *Handler) Mkdir(p Path) error {
	isDir, err := h.IsDir(p)
	if err != nil {
		return fmt.Errorf("(fs-mkdir) failed to classify: %w", err)
	}
	if isDir {
		return nil
	}

	if err := h.UnixOps.Mkdir(p.String(), dirMode); err != nil {
		switch {
		case errors.Is(err, unix.ENOENT):
			return fmt.Errorf("(fs-mkdir) %w: parent of %s", ErrNotFound, p)
		case errors.Is(err, unix.EEXIST):
			return fmt.Errorf("(fs-mkdir) %w: %s", ErrAlreadyExists, p)
		}

		return fmt.Errorf("(fs-mkdir) %w: %w", ErrFilesystem, err)
	}

	return nil
}

// Mkpath creates every missing directory level up to and including p.
// Idempotent.
func (h *Handler) Mkpath(p Path) error {
	if err := h.OSOps.MkdirAll(p.String(), dirMode); err != nil {
		return fmt.Errorf("(fs-mkpath) %w: %w", ErrFilesystem, err)
	}

	return nil
}

// Mkparent ensures the parent directory of p exists, creating any
// missing levels.
func (h *Handler) Mkparent(p Path) error {
	return h.Mkpath(p.Parent())
}

// Chmod sets the permission bits of p. An absent path surfaces as
// [ErrFilesystem].
func (h *Handler) Chmod(p Path, mode os.FileMode) error {
	if err := h.UnixOps.Chmod(p.String(), uint32(mode.Perm())); err != nil {
		return fmt.Errorf("(fs-chmod) %w: %w", ErrFilesystem, err)
	}

	return nil
}

// Symlink creates a relative symlink at to, pointing at from, with both
// endpoints first expressed relative to dir, the directory the link
// lives in. Relative link targets keep the link valid when the whole
// containing tree is relocated. With force an existing entry at to is
// removed first. A failing link creation surfaces as
// [ErrSymlinkCreation] carrying both endpoints.
func (h *Handler) Symlink(dir, from, to Path, force bool) error {
	relFrom, err := from.RelativeTo(dir)
	if err != nil {
		return fmt.Errorf("(fs-symlink) failed to rel source: %w", err)
	}
	if _, err := to.RelativeTo(dir); err != nil {
		return fmt.Errorf("(fs-symlink) failed to rel destination: %w", err)
	}

	if force {
		if err := h.Rm(to); err != nil {
			return fmt.Errorf("(fs-symlink) failed to clear destination: %w", err)
		}
	}

	if err := h.UnixOps.Symlink(relFrom, to.String()); err != nil {
		return fmt.Errorf("(fs-symlink) %w: %s -> %s: %w", ErrSymlinkCreation, to, from, err)
	}

	return nil
}
