package mirrorfs

import (
	"github.com/mwantia/mirrorfs/backend"
	"github.com/mwantia/mirrorfs/data"
	"github.com/mwantia/mirrorfs/journal"
	"github.com/mwantia/mirrorfs/log"
)

type Options struct {
	Logger        *log.Logger
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool

	Backend      backend.ObjectStorageBackend
	ContentTypes data.ContentTypes
	Policy       data.MirrorPolicy
	Journal      journal.Journal
}

type Option func(*Options) error

func newDefaultOptions() *Options {
	return &Options{
		LogLevel:     log.Info,
		ContentTypes: data.DefaultContentTypes(),
		Policy:       data.PolicyIgnore,
	}
}

// WithLogger replaces the internally created logger. The filesystem logs
// through a child named after its area and never closes an injected logger.
func WithLogger(logger *log.Logger) Option {
	return func(opts *Options) error {
		opts.Logger = logger
		return nil
	}
}

func WithLogLevel(logLevel log.LogLevel) Option {
	return func(opts *Options) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithoutTerminalLog() Option {
	return func(opts *Options) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) Option {
	return func(opts *Options) error {
		opts.LogFile = logFile
		return nil
	}
}

// WithBackend injects an already constructed remote store. It counts as a
// configured connection when deriving the mirror mode.
func WithBackend(b backend.ObjectStorageBackend) Option {
	return func(opts *Options) error {
		if b == nil {
			return errInvalidOption("backend cannot be nil")
		}

		opts.Backend = b
		return nil
	}
}

// WithContentTypes extends the default extension table.
func WithContentTypes(contentTypes map[string]string) Option {
	return func(opts *Options) error {
		opts.ContentTypes = opts.ContentTypes.With(contentTypes)
		return nil
	}
}

func WithMirrorPolicy(policy data.MirrorPolicy) Option {
	return func(opts *Options) error {
		opts.Policy = policy
		return nil
	}
}

// WithJournal records every remote failure. Unless a stricter policy was
// chosen, it switches the policy to PolicyJournal.
func WithJournal(j journal.Journal) Option {
	return func(opts *Options) error {
		if j == nil {
			return errInvalidOption("journal cannot be nil")
		}

		opts.Journal = j
		if opts.Policy == data.PolicyIgnore {
			opts.Policy = data.PolicyJournal
		}
		return nil
	}
}
