package abspath

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatterDelimiter fences a YAML front matter block on its own line.
const frontMatterDelimiter = "---"

// ReadYAML reads p and unmarshals its YAML content into out.
func (h *Handler) ReadYAML(p Path, out any) error {
	data, err := h.Read(p)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("(fs-readyaml) failed to unmarshal: %w", err)
	}

	return nil
}

// ReadYAMLFrontMatter reads the YAML front matter block of p into out
// and returns the document body following it. The block is fenced by a
// leading and a trailing "---" line; a document without an opening
// fence, or one that never closes it, fails with [ErrNoFrontMatter].
func (h *Handler) ReadYAMLFrontMatter(p Path, out any) (string, error) {
	data, err := h.Read(p)
	if err != nil {
		return "", err
	}

	lines := strings.Split(data, "\n")
	if strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return "", fmt.Errorf("(fs-frontmatter) %w: %s", ErrNoFrontMatter, p)
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelimiter {
			closing = i

			break
		}
	}
	if closing < 0 {
		return "", fmt.Errorf("(fs-frontmatter) %w: unterminated block in %s", ErrNoFrontMatter, p)
	}

	block := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(block), out); err != nil {
		return "", fmt.Errorf("(fs-frontmatter) failed to unmarshal: %w", err)
	}

	return strings.Join(lines[closing+1:], "\n"), nil
}
