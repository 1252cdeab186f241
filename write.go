package abspath

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// fileMode is the creation mode for written files, before umask.
const fileMode = 0o644

// Write writes text to p. An existing entry without force fails with
// [ErrAlreadyExists], even when the content would be identical. With
// force the existing entry is removed first and the content written
// after; the replacement is not atomic, so callers needing atomicity
// write to a temporary path and [Handler.Mv] over the destination.
func (h *Handler) Write(p Path, text string, force bool) error {
	if _, err := h.OSOps.Lstat(p.String()); err == nil {
		if !force {
			return fmt.Errorf("(fs-write) %w: %s", ErrAlreadyExists, p)
		}
		if err := h.Rm(p); err != nil {
			return fmt.Errorf("(fs-write) failed to clear destination: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("(fs-write) %w: %w", ErrFilesystem, err)
	}

	if err := h.OSOps.WriteFile(p.String(), []byte(text), fileMode); err != nil {
		return fmt.Errorf("(fs-write) %w: %w", ErrFilesystem, err)
	}

	return nil
}

// WriteJSON serializes v with the given indentation and writes it to p
// under the same overwrite contract as [Handler.Write].
func (h *Handler) WriteJSON(p Path, v any, indent string, force bool) error {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return fmt.Errorf("(fs-writejson) failed to marshal: %w", err)
	}

	return h.Write(p, string(data)+"\n", force)
}

// Read returns the file content at p as text. An absent path fails
// with [ErrNotFound].
func (h *Handler) Read(p Path) (string, error) {
	data, err := h.OSOps.ReadFile(p.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("(fs-read) %w: %s", ErrNotFound, p)
		}

		return "", fmt.Errorf("(fs-read) %w: %w", ErrFilesystem, err)
	}

	return string(data), nil
}

// ReadJSON reads p and unmarshals its JSON content into out.
func (h *Handler) ReadJSON(p Path, out any) error {
	data, err := h.Read(p)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("(fs-readjson) failed to unmarshal: %w", err)
	}

	return nil
}
