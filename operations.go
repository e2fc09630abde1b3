package mirrorfs

import (
	"context"
	goerrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mwantia/mirrorfs/data"
	"github.com/mwantia/mirrorfs/data/errors"
)

func (mfs *MirroredFileSystem) AddFile(ctx context.Context, path string, r io.Reader, overwrite bool) error {
	rel, full, err := mfs.resolve(path)
	if err != nil {
		return err
	}
	if rel == "" {
		return errors.IsDirectory(path)
	}

	info, err := os.Stat(full)
	switch {
	case err == nil && info.IsDir():
		return errors.IsDirectory(rel)
	case err == nil && !overwrite:
		return errors.Exist(rel)
	case err != nil && !goerrors.Is(err, fs.ErrNotExist):
		return errors.Local(err, rel)
	}

	if seeker, ok := r.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return errors.Local(err, rel)
		}
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.Local(err, rel)
	}

	size, err := writeLocalFile(full, r)
	if err != nil {
		return errors.Local(err, rel)
	}
	mfs.log.Debug("Stored '%s' (%d bytes)", rel, size)

	if !mfs.mirroring() {
		return nil
	}

	return mfs.handleMirror(ctx, mfs.uploadRemote(ctx, rel, full, r, size))
}

// writeLocalFile writes r into a temporary sibling and renames it onto full,
// so readers never observe a partially written file.
func writeLocalFile(full string, r io.Reader) (int64, error) {
	tmp := filepath.Join(filepath.Dir(full), "."+filepath.Base(full)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, full)
	}
	if err != nil {
		os.Remove(tmp)
		return 0, err
	}

	return size, nil
}

func (mfs *MirroredFileSystem) DeleteFile(ctx context.Context, path string) error {
	rel, full, err := mfs.resolve(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(full)
	if goerrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Local(err, rel)
	}
	if info.IsDir() {
		return errors.IsDirectory(rel)
	}

	if err := os.Remove(full); err != nil && !goerrors.Is(err, fs.ErrNotExist) {
		return errors.Local(err, rel)
	}
	mfs.log.Debug("Deleted '%s'", rel)

	if !mfs.mirroring() {
		return nil
	}

	return mfs.handleMirror(ctx, mfs.deleteRemote(ctx, rel))
}

func (mfs *MirroredFileSystem) DeleteDirectory(ctx context.Context, path string, recursive bool) error {
	rel, full, err := mfs.resolve(path)
	if err != nil {
		return err
	}
	if rel == "" {
		return errors.InvalidPath(nil, path)
	}

	info, err := os.Stat(full)
	if goerrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Local(err, rel)
	}
	if !info.IsDir() {
		return errors.NotDirectory(rel)
	}

	if recursive {
		err = os.RemoveAll(full)
	} else {
		err = os.Remove(full)
	}
	if err != nil {
		return errors.Local(err, rel)
	}
	mfs.log.Debug("Deleted directory '%s' (recursive: %t)", rel, recursive)

	if !mfs.mirroring() {
		return nil
	}

	return mfs.handleMirror(ctx, mfs.deleteRemotePrefix(ctx, rel))
}

func (mfs *MirroredFileSystem) OpenFile(ctx context.Context, path string) (io.ReadCloser, error) {
	rel, full, err := mfs.resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, errors.Local(err, rel)
	}
	if info.IsDir() {
		return nil, errors.IsDirectory(rel)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, errors.Local(err, rel)
	}

	return f, nil
}

func (mfs *MirroredFileSystem) FileExists(ctx context.Context, path string) bool {
	info, err := mfs.stat(path)
	return err == nil && !info.IsDir()
}

func (mfs *MirroredFileSystem) DirectoryExists(ctx context.Context, path string) bool {
	info, err := mfs.stat(path)
	return err == nil && info.IsDir()
}

func (mfs *MirroredFileSystem) GetLastModified(ctx context.Context, path string) (time.Time, error) {
	info, err := mfs.stat(path)
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}

func (mfs *MirroredFileSystem) GetCreated(ctx context.Context, path string) (time.Time, error) {
	_, full, err := mfs.resolve(path)
	if err != nil {
		return time.Time{}, err
	}

	info, err := mfs.stat(path)
	if err != nil {
		return time.Time{}, err
	}

	return data.CreateTime(full, info), nil
}

func (mfs *MirroredFileSystem) GetSize(ctx context.Context, path string) (int64, error) {
	info, err := mfs.stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, errors.IsDirectory(path)
	}

	return info.Size(), nil
}

func (mfs *MirroredFileSystem) stat(path string) (fs.FileInfo, error) {
	rel, full, err := mfs.resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, errors.Local(err, rel)
	}

	return info, nil
}
