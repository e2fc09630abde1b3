package errors

import (
	goerrors "errors"
	"fmt"
	"io/fs"

	"github.com/mwantia/mirrorfs/data"
)

func InvalidPath(err error, path string) error {
	return wrap(data.ErrInvalidPath, err, "'%s'", path)
}

func PathEscapesRoot(path, root string) error {
	return wrap(data.ErrInvalidPath, nil, "'%s' resolves outside of root '%s'", path, root)
}

func NotExist(err error, path string) error {
	return wrap(data.ErrNotExist, err, "'%s'", path)
}

func Exist(path string) error {
	return wrap(data.ErrExist, nil, "'%s'", path)
}

func IsDirectory(path string) error {
	return wrap(data.ErrIsDirectory, nil, "'%s'", path)
}

func NotDirectory(path string) error {
	return wrap(data.ErrNotDirectory, nil, "'%s'", path)
}

// Local maps an os-level failure on path onto the matching sentinel.
func Local(err error, path string) error {
	switch {
	case err == nil:
		return nil
	case goerrors.Is(err, fs.ErrNotExist):
		return NotExist(err, path)
	case goerrors.Is(err, fs.ErrExist):
		return wrap(data.ErrExist, err, "'%s'", path)
	case goerrors.Is(err, fs.ErrPermission):
		return wrap(data.ErrPermission, err, "'%s'", path)
	}

	return fmt.Errorf("mirrorfs: '%s': %w", path, err)
}
