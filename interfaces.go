package mirrorfs

import (
	"context"
	"io"
	"time"
)

// FileSystem is the contract a storage area exposes to its host. Paths are
// virtual paths relative to the area root; full local paths and public URLs
// of the same area are accepted wherever a path is expected.
type FileSystem interface {
	// AddFile writes the stream to path, creating parent directories.
	// Returns ErrExist if the file exists and overwrite is false.
	AddFile(ctx context.Context, path string, r io.Reader, overwrite bool) error

	// DeleteFile removes the file at path. Missing files are not an error.
	DeleteFile(ctx context.Context, path string) error

	// DeleteDirectory removes the directory at path, including its contents
	// when recursive is set. Missing directories are not an error.
	DeleteDirectory(ctx context.Context, path string, recursive bool) error

	// GetDirectories lists the immediate subdirectories of path.
	// Enumeration failures are logged and yield an empty list.
	GetDirectories(ctx context.Context, path string) []string

	// GetFiles lists the immediate files of path matching filter ("*" when empty).
	// Enumeration failures are logged and yield an empty list.
	GetFiles(ctx context.Context, path string, filter string) []string

	// OpenFile opens the local file for reading. The caller must close it.
	OpenFile(ctx context.Context, path string) (io.ReadCloser, error)

	// FileExists reports whether path is an existing file.
	FileExists(ctx context.Context, path string) bool

	// DirectoryExists reports whether path is an existing directory.
	DirectoryExists(ctx context.Context, path string) bool

	// GetRelativePath converts a full local path or public URL into a virtual path.
	GetRelativePath(fullPathOrURL string) string

	// GetFullPath maps a virtual path onto the local root.
	GetFullPath(path string) string

	// GetURL returns the public URL of a virtual path.
	GetURL(path string) string

	// GetLastModified returns the modification time of a file or directory.
	GetLastModified(ctx context.Context, path string) (time.Time, error)

	// GetCreated returns the creation time of a file or directory, falling
	// back to its modification time where the platform does not record one.
	GetCreated(ctx context.Context, path string) (time.Time, error)

	// GetSize returns the size of a file in bytes.
	GetSize(ctx context.Context, path string) (int64, error)
}
