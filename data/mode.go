package data

import (
	"fmt"
	"strings"
)

// MirrorMode describes whether operations are replicated to a remote store.
type MirrorMode int

const (
	// MirrorDisabled means no remote connection was configured.
	MirrorDisabled MirrorMode = iota
	// MirrorLocalOnly means a remote is configured but mirroring is switched off.
	MirrorLocalOnly
	// MirrorLocalAndRemote replicates every write and delete to the remote.
	MirrorLocalAndRemote
)

// DeriveMirrorMode returns the mode for whether a remote connection is
// configured and whether mirroring is switched on.
func DeriveMirrorMode(configured, enabled bool) MirrorMode {
	if !configured {
		return MirrorDisabled
	}
	if !enabled {
		return MirrorLocalOnly
	}

	return MirrorLocalAndRemote
}

func (m MirrorMode) String() string {
	switch m {
	case MirrorDisabled:
		return "disabled"
	case MirrorLocalOnly:
		return "local-only"
	case MirrorLocalAndRemote:
		return "local-and-remote"
	default:
		return "unknown"
	}
}

// MirrorPolicy decides what happens to a failed remote operation once the
// local half has been committed.
type MirrorPolicy int

const (
	// PolicyIgnore logs the failure and reports success.
	PolicyIgnore MirrorPolicy = iota
	// PolicyJournal logs the failure, records it in a journal and reports success.
	PolicyJournal
	// PolicyStrict logs the failure and returns it wrapped in ErrMirrorFailed.
	PolicyStrict
)

func (p MirrorPolicy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyJournal:
		return "journal"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

func ParseMirrorPolicy(policy string) (MirrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", "ignore":
		return PolicyIgnore, nil
	case "journal":
		return PolicyJournal, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyIgnore, fmt.Errorf("%w: unknown mirror policy '%s'", ErrInvalidConfig, policy)
	}
}
