package abspath_test

import (
	"testing"

	"github.com/desertwitch/abspath"
	"github.com/stretchr/testify/assert"
)

func TestJoin_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		base  abspath.Path
		parts []string
		want  abspath.Path
	}{
		{"single", "/tmp/x", []string{"y"}, "/tmp/x/y"},
		{"multiple", "/tmp/x", []string{"y", "z"}, "/tmp/x/y/z"},
		{"onto root", "/", []string{"etc"}, "/etc"},
		{"normalizes", "/tmp/x", []string{"a//b/", "./c"}, "/tmp/x/a/b/c"},
		{"dotdot inside", "/tmp/x", []string{"..", "y"}, "/tmp/y"},
		{"no parts", "/tmp/x", nil, "/tmp/x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.base.Join(tt.parts...))
		})
	}
}

func TestJoin_AbsoluteDiscardsBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, abspath.Path("/abs"), abspath.MustNew("/tmp/x").Join("/abs"))
	assert.Equal(t, abspath.Path("/a/b"), abspath.MustNew("/tmp/x").Join("/a", "b"))
}

func TestJoin_EmptyReturnsSelf(t *testing.T) {
	t.Parallel()

	p := abspath.MustNew("/tmp/x")

	assert.Equal(t, p, p.Join())
	assert.Equal(t, p, p.Join(""))
}

func TestParent_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, abspath.Path("/tmp"), abspath.MustNew("/tmp/x").Parent())
	assert.Equal(t, abspath.Root, abspath.MustNew("/tmp").Parent())
}

func TestParent_RootIdempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, abspath.Root, abspath.Root.Parent())
}

func TestParent_BasenameRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"/tmp/x", "/a", "/mnt/disk4/movies/file.mp4"} {
		p := abspath.MustNew(s)

		assert.Equal(t, p, p.Parent().Join(p.Basename()))
	}
}

func TestExtname_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   abspath.Path
		want string
	}{
		{"simple", "/tmp/file.txt", ".txt"},
		{"compound tar gz", "/tmp/backup.tar.gz", ".tar.gz"},
		{"compound tar xz", "/tmp/backup.tar.xz", ".tar.xz"},
		{"compound tar zst", "/tmp/backup.tar.zst", ".tar.zst"},
		{"last of many", "/tmp/a.b.c", ".c"},
		{"none", "/tmp/file", ""},
		{"bare compound name", "/tmp/.tar.gz", ".gz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.in.Extname())
		})
	}
}

func TestBasename_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "file.mp4", abspath.MustNew("/mnt/movies/file.mp4").Basename())
	assert.Equal(t, "movies", abspath.MustNew("/mnt/movies/").Basename())
}
