package abspath

import "errors"

var (
	// ErrInvalidPath is an error that occurs when a [Path] is constructed
	// from a string that is not an absolute path.
	ErrInvalidPath = errors.New("invalid path: not absolute")

	// ErrNotFound is an error that occurs when an operation requires an
	// existing entry that is absent from the filesystem.
	ErrNotFound = errors.New("path does not exist")

	// ErrAlreadyExists is an error that occurs when a mutating operation
	// without force hits an already existing destination.
	ErrAlreadyExists = errors.New("path already exists")

	// ErrNotASubpath is an error that occurs when [Path.RelativeTo]
	// receives a base that is not an ancestor of the target path.
	ErrNotASubpath = errors.New("not a subpath")

	// ErrDirectoryNotEmpty is an error that occurs on non-recursive
	// removal of a non-empty directory.
	ErrDirectoryNotEmpty = errors.New("directory not empty")

	// ErrIsADirectory is an error that occurs when a forced move targets
	// an existing directory.
	ErrIsADirectory = errors.New("destination is a directory")

	// ErrSymlinkCreation is an error that occurs when the underlying
	// link creation step fails.
	ErrSymlinkCreation = errors.New("symlink creation failed")

	// ErrUnsupportedPlatform is an error that occurs when a platform
	// lookup, such as for the home directory, is not available.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNoFrontMatter is an error that occurs when a document opens a
	// front matter block without a closing delimiter, or has none at all.
	ErrNoFrontMatter = errors.New("no front matter")

	// ErrFilesystem is the catch-all error for operating system failures
	// not covered by a more specific error of this package.
	ErrFilesystem = errors.New("filesystem error")
)
