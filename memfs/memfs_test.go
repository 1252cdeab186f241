package memfs_test

import (
	"io/fs"
	"testing"

	"github.com/desertwitch/abspath/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestStat_FollowsSymlinkChains(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	fsys.AddFile("/data/real", "content")
	fsys.AddLink("/data/hop", "real")
	fsys.AddLink("/data/entry", "hop")

	info, err := fsys.Stat("/data/entry")

	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.EqualValues(t, 7, info.Size())
}

func TestLstat_DoesNotFollow(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	fsys.AddFile("/data/real", "content")
	fsys.AddLink("/data/link", "real")

	info, err := fsys.Lstat("/data/link")

	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink)
}

func TestReadDir_SortedNames(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	fsys.AddFile("/d/c", "1")
	fsys.AddFile("/d/a", "2")
	fsys.AddDir("/d/b")

	entries, err := fsys.ReadDir("/d")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Name())
	assert.Equal(t, "b", entries[1].Name())
	assert.Equal(t, "c", entries[2].Name())
	assert.True(t, entries[1].IsDir())
}

func TestRemove_NonEmptyDirectory(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	fsys.AddFile("/d/sub/file", "content")

	err := fsys.Remove("/d/sub")

	require.ErrorIs(t, err, unix.ENOTEMPTY)
}

func TestRename_MovesDirectorySubtree(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	fsys.AddFile("/old/a/file", "content")
	fsys.AddLink("/old/a/link", "file")
	fsys.AddDir("/new")

	require.NoError(t, fsys.Rename("/old/a", "/new/a"))

	data, err := fsys.ReadFile("/new/a/file")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	assert.Equal(t, "file", fsys.Symlinks["/new/a/link"])

	_, err = fsys.Stat("/old/a")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMkdirAll_FileInChain(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()
	fsys.AddFile("/a/b", "content")

	err := fsys.MkdirAll("/a/b/c", 0o755)

	require.Error(t, err)
}

func TestWriteFile_ParentMissing(t *testing.T) {
	t.Parallel()

	fsys := memfs.New()

	err := fsys.WriteFile("/missing/file", []byte("content"), 0o644)

	require.ErrorIs(t, err, fs.ErrNotExist)
}
