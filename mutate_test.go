package abspath_test

import (
	"testing"

	"github.com/desertwitch/abspath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMv_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/src/file", "content")
	fsys.AddDir("/dst")

	src := abspath.MustNew("/src/file")
	dst := abspath.MustNew("/dst/file")

	moved, err := handler.Mv(src, dst, false)
	require.NoError(t, err)
	assert.Equal(t, dst, moved)

	exists, err := handler.Exists(src)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = handler.Exists(dst)
	require.NoError(t, err)
	assert.True(t, exists)

	content, err := handler.Read(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", content)
}

func TestMv_DestinationExists(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/src/file", "new")
	fsys.AddFile("/dst/file", "old")

	_, err := handler.Mv(abspath.MustNew("/src/file"), abspath.MustNew("/dst/file"), false)

	require.ErrorIs(t, err, abspath.ErrAlreadyExists)
}

func TestMv_ForceOverwrites(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/src/file", "new")
	fsys.AddFile("/dst/file", "old")

	moved, err := handler.Mv(abspath.MustNew("/src/file"), abspath.MustNew("/dst/file"), true)
	require.NoError(t, err)

	content, err := handler.Read(moved)
	require.NoError(t, err)
	assert.Equal(t, "new", content)
}

func TestMv_ForceOntoDirectory(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/src/file", "content")
	fsys.AddDir("/dst/file")

	_, err := handler.Mv(abspath.MustNew("/src/file"), abspath.MustNew("/dst/file"), true)

	require.ErrorIs(t, err, abspath.ErrIsADirectory)
}

func TestMv_SelfMove(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/src/file", "content")

	p := abspath.MustNew("/src/file")

	// Uniform overwrite contract: even a self-move needs force.
	_, err := handler.Mv(p, p, false)
	require.ErrorIs(t, err, abspath.ErrAlreadyExists)
}

func TestMvInto_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/src/file.mp4", "content")
	fsys.AddDir("/dst")

	moved, err := handler.MvInto(abspath.MustNew("/src/file.mp4"), abspath.MustNew("/dst"), false)

	require.NoError(t, err)
	assert.Equal(t, abspath.Path("/dst/file.mp4"), moved)
}

func TestRm_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tmp/file", "content")

	require.NoError(t, handler.Rm(abspath.MustNew("/tmp/file")))

	exists, err := handler.Exists(abspath.MustNew("/tmp/file"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRm_AbsentNoOp(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler()

	require.NoError(t, handler.Rm(abspath.MustNew("/tmp/missing")))
}

func TestRm_NonEmptyDirectory(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tmp/dir/file", "content")

	err := handler.Rm(abspath.MustNew("/tmp/dir"))

	require.ErrorIs(t, err, abspath.ErrDirectoryNotEmpty)
}

func TestRmTree_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tmp/dir/a", "content")
	fsys.AddFile("/tmp/dir/sub/b", "content")

	require.NoError(t, handler.RmTree(abspath.MustNew("/tmp/dir")))

	exists, err := handler.Exists(abspath.MustNew("/tmp/dir"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRmTree_AbsentNoOp(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler()

	require.NoError(t, handler.RmTree(abspath.MustNew("/tmp/missing")))
}

func TestMkdir_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddDir("/tmp")

	require.NoError(t, handler.Mkdir(abspath.MustNew("/tmp/new")))

	isDir, err := handler.IsDir(abspath.MustNew("/tmp/new"))
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestMkdir_ExistingDirectoryNoOp(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddDir("/tmp/dir")

	require.NoError(t, handler.Mkdir(abspath.MustNew("/tmp/dir")))
}

func TestMkdir_ParentMissing(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler()

	err := handler.Mkdir(abspath.MustNew("/missing/new"))

	require.ErrorIs(t, err, abspath.ErrNotFound)
}

func TestMkdir_FileInTheWay(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tmp/entry", "content")

	err := handler.Mkdir(abspath.MustNew("/tmp/entry"))

	require.ErrorIs(t, err, abspath.ErrAlreadyExists)
}

func TestMkpath_Success(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler()

	p := abspath.MustNew("/a/b/c/d")

	require.NoError(t, handler.Mkpath(p))
	require.NoError(t, handler.Mkpath(p)) // idempotent

	isDir, err := handler.IsDir(p)
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestMkparent_Success(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler()

	require.NoError(t, handler.Mkparent(abspath.MustNew("/a/b/file")))

	isDir, err := handler.IsDir(abspath.MustNew("/a/b"))
	require.NoError(t, err)
	assert.True(t, isDir)

	exists, err := handler.Exists(abspath.MustNew("/a/b/file"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestChmod_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tmp/file", "content")

	require.NoError(t, handler.Chmod(abspath.MustNew("/tmp/file"), 0o600))

	assert.EqualValues(t, 0o600, fsys.Modes["/tmp/file"])
}

func TestChmod_Absent(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler()

	err := handler.Chmod(abspath.MustNew("/tmp/missing"), 0o600)

	require.ErrorIs(t, err, abspath.ErrFilesystem)
}

func TestSymlink_Success(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tree/data/real", "content")

	dir := abspath.MustNew("/tree")
	from := abspath.MustNew("/tree/data/real")
	to := abspath.MustNew("/tree/link")

	require.NoError(t, handler.Symlink(dir, from, to, false))

	// The stored target is relative, so the link survives tree moves.
	assert.Equal(t, "data/real", fsys.Symlinks["/tree/link"])

	resolved, err := handler.Readlink(to)
	require.NoError(t, err)
	assert.Equal(t, from, resolved)
}

func TestSymlink_ForceReplaces(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tree/data/real", "content")
	fsys.AddLink("/tree/link", "stale")

	dir := abspath.MustNew("/tree")
	from := abspath.MustNew("/tree/data/real")
	to := abspath.MustNew("/tree/link")

	require.NoError(t, handler.Symlink(dir, from, to, true))

	assert.Equal(t, "data/real", fsys.Symlinks["/tree/link"])
}

func TestSymlink_ExistingDestination(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/tree/data/real", "content")
	fsys.AddFile("/tree/link", "occupied")

	err := handler.Symlink(
		abspath.MustNew("/tree"),
		abspath.MustNew("/tree/data/real"),
		abspath.MustNew("/tree/link"),
		false,
	)

	require.ErrorIs(t, err, abspath.ErrSymlinkCreation)
}

func TestSymlink_EndpointOutsideDir(t *testing.T) {
	t.Parallel()

	handler, fsys := newTestHandler()
	fsys.AddFile("/elsewhere/real", "content")

	err := handler.Symlink(
		abspath.MustNew("/tree"),
		abspath.MustNew("/elsewhere/real"),
		abspath.MustNew("/tree/link"),
		false,
	)

	require.ErrorIs(t, err, abspath.ErrNotASubpath)
}
