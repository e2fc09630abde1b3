package mirrorfs

import (
	"context"

	"github.com/mwantia/mirrorfs/backend"
	"github.com/mwantia/mirrorfs/data"
	"github.com/mwantia/mirrorfs/data/errors"
	"github.com/mwantia/mirrorfs/journal"
	"github.com/mwantia/mirrorfs/log"
)

// MirroredFileSystem stores files below a local root and, when mirroring is
// enabled, replicates every write and delete to a remote object store. The
// local file system is the source of truth: reads never touch the remote and
// a remote failure never rolls back a committed local change.
//
// It performs no locking of its own; concurrent callers touching the same
// paths see whatever the local file system provides.
type MirroredFileSystem struct {
	config     Config
	mode       data.MirrorMode
	policy     data.MirrorPolicy
	translator *data.Translator

	backend      backend.ObjectStorageBackend
	journal      journal.Journal
	contentTypes data.ContentTypes

	log       *log.Logger
	ownLogger *log.Logger

	commands *CommandManager
}

var _ FileSystem = (*MirroredFileSystem)(nil)

// NewMirroredFileSystem validates cfg, prepares the local root and connects
// the remote store when one is configured. Configuration problems are fatal
// here and never surface from later operations.
func NewMirroredFileSystem(ctx context.Context, cfg Config, opts ...Option) (*MirroredFileSystem, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.ensureLocalRoot(); err != nil {
		return nil, err
	}
	if options.Policy == data.PolicyJournal && options.Journal == nil {
		return nil, errors.InvalidConfig(nil, "mirror policy", "'journal' requires a journal")
	}

	mfs := &MirroredFileSystem{
		config: cfg,
		mode:   data.DeriveMirrorMode(cfg.ConnectionString != "" || options.Backend != nil, cfg.MirrorEnabled),
		policy: options.Policy,
		translator: data.NewTranslator(data.StorageRoot{
			LocalRoot: cfg.LocalRoot,
			URLPrefix: cfg.URLPrefix,
		}, cfg.ContainerStripPrefix, cfg.KeyStripPrefix),
		journal:      options.Journal,
		contentTypes: options.ContentTypes,
	}

	root := options.Logger
	if root == nil {
		root = log.NewLogger("mirrorfs", log.LoggerOptions{
			Level:      options.LogLevel,
			File:       options.LogFile,
			NoTerminal: options.NoTerminalLog,
		})
		mfs.ownLogger = root
	}
	mfs.log = root.Named(cfg.Area)

	if mfs.mode != data.MirrorDisabled {
		b := options.Backend
		if b == nil {
			var err error
			if b, err = NewBackend(cfg.ConnectionString); err != nil {
				mfs.closeLogger()
				return nil, err
			}
		}

		if err := b.Open(ctx); err != nil {
			mfs.closeLogger()
			return nil, err
		}
		mfs.backend = b
	}

	mfs.commands = newCommandManager(mfs)

	mfs.log.Info("Storage area '%s' at '%s' (url: '%s', mirror: %s, policy: %s)",
		cfg.VirtualRoot, cfg.LocalRoot, mfs.translator.Root().URLPrefix, mfs.mode, mfs.policy)
	if mfs.backend != nil {
		mfs.log.Debug("Remote store '%s' opened", mfs.backend.Name())
	}

	return mfs, nil
}

// Mode returns the derived mirror mode.
func (mfs *MirroredFileSystem) Mode() data.MirrorMode {
	return mfs.mode
}

func (mfs *MirroredFileSystem) Policy() data.MirrorPolicy {
	return mfs.policy
}

func (mfs *MirroredFileSystem) Config() Config {
	return mfs.config
}

// Close releases the remote store, the journal and an internally created logger.
func (mfs *MirroredFileSystem) Close(ctx context.Context) error {
	var errs data.Errors

	if mfs.backend != nil {
		errs.Add(mfs.backend.Close(ctx))
	}
	if mfs.journal != nil {
		errs.Add(mfs.journal.Close())
	}

	mfs.log.Debug("Storage area '%s' closed", mfs.config.VirtualRoot)
	errs.Add(mfs.closeLogger())

	return errs.Errors()
}

func (mfs *MirroredFileSystem) closeLogger() error {
	if mfs.ownLogger == nil {
		return nil
	}

	return mfs.ownLogger.Close()
}

func (mfs *MirroredFileSystem) mirroring() bool {
	return mfs.mode == data.MirrorLocalAndRemote
}
