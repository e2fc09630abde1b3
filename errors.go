package mirrorfs

import (
	"fmt"

	"github.com/mwantia/mirrorfs/data"
)

// Standard errors returned by the mirrored filesystem.
var (
	// Path resolution errors
	ErrInvalidPath = data.ErrInvalidPath

	// Configuration errors
	ErrInvalidConfig             = data.ErrInvalidConfig
	ErrMalformedConnectionString = data.ErrMalformedConnectionString
	ErrUnknownProvider           = data.ErrUnknownProvider

	// File operation errors
	ErrNotExist     = data.ErrNotExist
	ErrExist        = data.ErrExist
	ErrIsDirectory  = data.ErrIsDirectory
	ErrNotDirectory = data.ErrNotDirectory
	ErrPermission   = data.ErrPermission

	// Mirror errors
	ErrMirrorDisabled = data.ErrMirrorDisabled
	ErrMirrorFailed   = data.ErrMirrorFailed
)

type MirrorOperation string

const (
	OpUpload       MirrorOperation = "upload"
	OpDelete       MirrorOperation = "delete"
	OpDeletePrefix MirrorOperation = "delete-prefix"
)

// MirrorError describes a remote operation that failed after the local
// change was already committed.
type MirrorError struct {
	Op  MirrorOperation
	Key data.ObjectKey
	Err error
}

func (e *MirrorError) Error() string {
	return fmt.Sprintf("mirrorfs: remote %s of '%s' failed: %v", e.Op, e.Key, e.Err)
}

func (e *MirrorError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMirrorFailed) match every mirror failure.
func (e *MirrorError) Is(target error) bool {
	return target == data.ErrMirrorFailed
}
