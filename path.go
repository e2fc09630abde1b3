package mirrorfs

import (
	"path/filepath"

	"github.com/mwantia/mirrorfs/data/errors"
)

// resolve converts any accepted path form into a cleaned virtual path and the
// matching local path, rejecting anything that leaves the local root.
func (mfs *MirroredFileSystem) resolve(path string) (string, string, error) {
	root := mfs.translator.Root().LocalRoot

	full := mfs.translator.ToFullPath(mfs.translator.ToRelativePath(path))
	if !mfs.translator.Contains(full) {
		return "", "", errors.PathEscapesRoot(path, root)
	}

	rel, err := filepath.Rel(root, filepath.Clean(full))
	if err != nil {
		return "", "", errors.InvalidPath(err, path)
	}
	if rel == "." {
		rel = ""
	}

	return filepath.ToSlash(rel), full, nil
}

func (mfs *MirroredFileSystem) GetRelativePath(fullPathOrURL string) string {
	return filepath.ToSlash(mfs.translator.ToRelativePath(fullPathOrURL))
}

func (mfs *MirroredFileSystem) GetFullPath(path string) string {
	return mfs.translator.ToFullPath(path)
}

func (mfs *MirroredFileSystem) GetURL(path string) string {
	return mfs.translator.ToURL(path)
}
