package abspath

import (
	"errors"
	"fmt"
	"io/fs"
)

// Exists reports whether an entry can be stat'ed at p, following
// symlinks. Absence of the entry is not an error; any other stat
// failure is surfaced as [ErrFilesystem].
func (h *Handler) Exists(p Path) (bool, error) {
	if _, err := h.OSOps.Stat(p.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-exists) %w: %w", ErrFilesystem, err)
	}

	return true, nil
}

// IsFile reports whether p is a regular file, following symlinks.
// An absent entry yields false, not an error.
func (h *Handler) IsFile(p Path) (bool, error) {
	info, err := h.OSOps.Stat(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isfile) %w: %w", ErrFilesystem, err)
	}

	return info.Mode().IsRegular(), nil
}

// IsDir reports whether p is a directory, following symlinks.
// An absent entry yields false, not an error.
func (h *Handler) IsDir(p Path) (bool, error) {
	info, err := h.OSOps.Stat(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isdir) %w: %w", ErrFilesystem, err)
	}

	return info.IsDir(), nil
}

// IsSymlink reports whether p itself is a symlink, without following
// it. An absent entry yields false, not an error.
func (h *Handler) IsSymlink(p Path) (bool, error) {
	info, err := h.OSOps.Lstat(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-issymlink) %w: %w", ErrFilesystem, err)
	}

	return info.Mode()&fs.ModeSymlink != 0, nil
}

// Readlink resolves p only if its final segment is a symlink, returning
// the link target joined onto p's parent; symlinks in earlier segments
// are never followed. A dangling target is not an error, the computed
// target path is still returned. An existing entry that is not a
// symlink resolves to p unchanged; an absent entry fails with
// [ErrNotFound].
func (h *Handler) Readlink(p Path) (Path, error) {
	info, err := h.OSOps.Lstat(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("(fs-readlink) %w: %s", ErrNotFound, p)
		}

		return "", fmt.Errorf("(fs-readlink) %w: %w", ErrFilesystem, err)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return p, nil
	}

	target, err := h.OSOps.Readlink(p.String())
	if err != nil {
		return "", fmt.Errorf("(fs-readlink) %w: %w", ErrFilesystem, err)
	}

	return p.Parent().Join(target), nil
}

// Ls returns the entries of directory p as [Path] values, in the
// provider's enumeration order. An absent path fails with [ErrNotFound].
func (h *Handler) Ls(p Path) ([]Path, error) {
	entries, err := h.OSOps.ReadDir(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("(fs-ls) %w: %s", ErrNotFound, p)
		}

		return nil, fmt.Errorf("(fs-ls) %w: %w", ErrFilesystem, err)
	}

	paths := make([]Path, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, p.Join(entry.Name()))
	}

	return paths, nil
}
