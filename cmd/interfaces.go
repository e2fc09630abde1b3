package cmd

import (
	"context"
	"io"
	"time"
)

// API is a simplified version of FileSystem.
// It strips away all functions not required for command operations.
type API interface {
	// AddFile writes the stream to path.
	// Returns an error if the file exists and overwrite is false.
	AddFile(ctx context.Context, path string, r io.Reader, overwrite bool) error

	// DeleteFile removes the file at path. Missing files are not an error.
	DeleteFile(ctx context.Context, path string) error

	// DeleteDirectory removes the directory at path, recursively if requested.
	DeleteDirectory(ctx context.Context, path string, recursive bool) error

	// GetDirectories lists the immediate subdirectories of path.
	GetDirectories(ctx context.Context, path string) []string

	// GetFiles lists the immediate files of path matching filter.
	GetFiles(ctx context.Context, path string, filter string) []string

	// OpenFile opens the local file for reading.
	// The returned reader must be closed by the caller.
	OpenFile(ctx context.Context, path string) (io.ReadCloser, error)

	FileExists(ctx context.Context, path string) bool
	DirectoryExists(ctx context.Context, path string) bool

	GetFullPath(path string) string
	GetURL(path string) string

	GetLastModified(ctx context.Context, path string) (time.Time, error)
	GetCreated(ctx context.Context, path string) (time.Time, error)
	GetSize(ctx context.Context, path string) (int64, error)

	// VerifyFile compares the local file with its remote copy.
	VerifyFile(ctx context.Context, path string) (bool, error)

	// SetContentTypeForContainer rewrites the content type of every remote object in container.
	SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error)
}

// Command represents an executable command against a storage area.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls -d [path]")
	Usage() string

	// Execute runs the command with parsed arguments
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, api API, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (this is optional)
	GetFlags() *CommandFlagSet
}
