package data

import (
	"errors"
	"sync"
)

// Standard errors that the filesystem and its backends should use.
var (
	// Path resolution errors
	ErrInvalidPath = errors.New("mirrorfs: invalid path detected")

	// Configuration errors
	ErrInvalidConfig             = errors.New("mirrorfs: invalid configuration")
	ErrMalformedConnectionString = errors.New("mirrorfs: malformed connection string")
	ErrUnknownProvider           = errors.New("mirrorfs: unknown connection string provider")

	// File operation errors
	ErrNotExist     = errors.New("mirrorfs: file does not exist")
	ErrExist        = errors.New("mirrorfs: file already exists")
	ErrIsDirectory  = errors.New("mirrorfs: is a directory")
	ErrNotDirectory = errors.New("mirrorfs: not a directory")
	ErrPermission   = errors.New("mirrorfs: permission denied")

	// Mirror errors
	ErrMirrorDisabled = errors.New("mirrorfs: remote mirror not configured")
	ErrMirrorFailed   = errors.New("mirrorfs: remote mirror operation failed")
)

// Errors collects multiple failures, e.g. while deleting every object under a prefix.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.errors)
}

func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
