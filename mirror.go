package mirrorfs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mwantia/mirrorfs/data"
	"github.com/mwantia/mirrorfs/journal"
)

// uploadRemote sends the freshly written file to the remote store. Seekable
// streams are rewound and uploaded directly; everything else is re-read from
// the local copy, which holds exactly the bytes that were consumed.
func (mfs *MirroredFileSystem) uploadRemote(ctx context.Context, rel, full string, r io.Reader, size int64) *MirrorError {
	key := mfs.translator.ObjectKeyForFile(rel)
	if key.IsZero() {
		return &MirrorError{Op: OpUpload, Key: key, Err: fmt.Errorf("no container derivable from '%s'", rel)}
	}

	if !mfs.backend.GetCapabilities().Accepts(size) {
		return &MirrorError{Op: OpUpload, Key: key, Err: fmt.Errorf("object of %d bytes exceeds the limit of '%s'", size, mfs.backend.Name())}
	}

	source, release, err := uploadSource(r, full)
	if err != nil {
		return &MirrorError{Op: OpUpload, Key: key, Err: err}
	}
	defer release()

	contentType, _ := mfs.contentTypes.Lookup(rel)
	if err := mfs.backend.Upload(ctx, source, size, key.Container, key.Key, contentType); err != nil {
		return &MirrorError{Op: OpUpload, Key: key, Err: err}
	}

	mfs.log.Debug("Uploaded '%s' to '%s'", rel, key)
	return nil
}

func uploadSource(r io.Reader, full string) (io.Reader, func(), error) {
	if seeker, ok := r.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err == nil {
			return r, func() {}, nil
		}
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { f.Close() }, nil
}

func (mfs *MirroredFileSystem) deleteRemote(ctx context.Context, rel string) *MirrorError {
	key := mfs.translator.ObjectKeyForFile(rel)
	if key.IsZero() {
		return nil
	}

	if !mfs.backend.Exists(ctx, key.Container, key.Key) {
		mfs.log.Debug("No remote object at '%s', skipping delete", key)
		return nil
	}

	if err := mfs.backend.Delete(ctx, key.Container, key.Key); err != nil {
		return &MirrorError{Op: OpDelete, Key: key, Err: err}
	}

	mfs.log.Debug("Deleted remote object '%s'", key)
	return nil
}

func (mfs *MirroredFileSystem) deleteRemotePrefix(ctx context.Context, rel string) *MirrorError {
	key := mfs.translator.ObjectKeyForDirectory(rel)
	if key.IsZero() {
		return nil
	}

	count, err := mfs.backend.DeleteByPrefix(ctx, key.Container, key.Key)
	if err != nil {
		return &MirrorError{Op: OpDeletePrefix, Key: key, Err: err}
	}

	mfs.log.Debug("Deleted %d remote objects below '%s'", count, key)
	return nil
}

// handleMirror applies the configured policy to a remote failure. The local
// change has already been committed at this point.
func (mfs *MirroredFileSystem) handleMirror(ctx context.Context, merr *MirrorError) error {
	if merr == nil {
		return nil
	}

	mfs.log.Warn("Remote %s of '%s' failed: %v", merr.Op, merr.Key, merr.Err)

	switch mfs.policy {
	case data.PolicyJournal:
		entry := journal.NewEntry(mfs.config.Area, string(merr.Op), merr.Key.Container, merr.Key.Key, merr.Err)
		if err := mfs.journal.Record(ctx, entry); err != nil {
			mfs.log.Error("Unable to journal failed %s of '%s': %v", merr.Op, merr.Key, err)
		}
	case data.PolicyStrict:
		return merr
	}

	return nil
}
