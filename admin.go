package mirrorfs

import (
	"bytes"
	"context"
	"io"

	"github.com/mwantia/mirrorfs/data"
	"github.com/mwantia/mirrorfs/data/errors"
	"github.com/zeebo/blake3"
)

// SetContentTypeForContainer rewrites the content type of every remote object
// in container. It works in both configured modes, so a remote can be fixed
// up while mirroring is switched off.
func (mfs *MirroredFileSystem) SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error) {
	if mfs.backend == nil {
		return 0, data.ErrMirrorDisabled
	}
	if container == "" {
		return 0, errors.InvalidPath(nil, container)
	}

	count, err := mfs.backend.SetContentTypeForContainer(ctx, container, contentType)
	if err != nil {
		return count, err
	}

	mfs.log.Info("Updated content type of %d objects in '%s' to '%s'", count, container, contentType)
	return count, nil
}

// VerifyFile reports whether the remote copy of path holds the same bytes as
// the local file. A missing remote object verifies as false.
func (mfs *MirroredFileSystem) VerifyFile(ctx context.Context, path string) (bool, error) {
	if mfs.backend == nil {
		return false, data.ErrMirrorDisabled
	}

	local, err := mfs.OpenFile(ctx, path)
	if err != nil {
		return false, err
	}
	defer local.Close()

	rel, _, err := mfs.resolve(path)
	if err != nil {
		return false, err
	}

	key := mfs.translator.ObjectKeyForFile(rel)
	remote, found, err := mfs.backend.Download(ctx, key.Container, key.Key)
	if err != nil {
		return false, err
	}
	if !found {
		mfs.log.Debug("No remote object at '%s'", key)
		return false, nil
	}
	defer remote.Close()

	localSum, err := digest(local)
	if err != nil {
		return false, err
	}
	remoteSum, err := digest(remote)
	if err != nil {
		return false, err
	}

	matches := bytes.Equal(localSum, remoteSum)
	if !matches {
		mfs.log.Warn("Remote object '%s' differs from '%s'", key, rel)
	}

	return matches, nil
}

func digest(r io.Reader) ([]byte, error) {
	hasher := blake3.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return nil, err
	}

	return hasher.Sum(nil), nil
}
