package mirrorfs

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mwantia/mirrorfs/data/errors"
)

// Config describes one storage area: its virtual root, where it lives on
// disk, how it is served and where it is mirrored to.
type Config struct {
	// Area names the storage area (e.g. "media") and is used for logging.
	// Defaults to the last segment of VirtualRoot.
	Area string

	// VirtualRoot is the logical root, e.g. "~/media" or "/media".
	VirtualRoot string
	// LocalRoot is the directory backing the area. It is made absolute and
	// created when missing.
	LocalRoot string
	// URLPrefix is the public URL root. Defaults to VirtualRoot without "~".
	URLPrefix string

	// ConnectionString addresses the remote store. Empty disables mirroring.
	ConnectionString string
	// MirrorEnabled switches replication on once a remote is configured.
	MirrorEnabled bool

	// ContainerStripPrefix is removed from the virtual path before the
	// container is derived.
	ContainerStripPrefix string
	// KeyStripPrefix holds '|'-separated substrings removed from the key.
	KeyStripPrefix string
}

func (c *Config) normalize() error {
	c.VirtualRoot = strings.TrimSpace(c.VirtualRoot)
	if c.VirtualRoot == "" {
		return errors.InvalidConfig(nil, "virtual root", "cannot be empty")
	}
	if !strings.HasPrefix(c.VirtualRoot, "/") && !strings.HasPrefix(c.VirtualRoot, "~/") {
		return errors.InvalidConfig(nil, "virtual root", "must start with '/' or '~/'")
	}

	if strings.TrimSpace(c.LocalRoot) == "" {
		return errors.InvalidConfig(nil, "local root", "cannot be empty")
	}

	localRoot, err := filepath.Abs(c.LocalRoot)
	if err != nil {
		return errors.InvalidConfig(err, "local root", "cannot be resolved")
	}
	c.LocalRoot = localRoot

	if c.URLPrefix == "" {
		c.URLPrefix = strings.TrimPrefix(c.VirtualRoot, "~")
	}

	if c.Area == "" {
		c.Area = path.Base(strings.TrimRight(strings.TrimPrefix(c.VirtualRoot, "~"), "/"))
		if c.Area == "/" || c.Area == "." {
			c.Area = "root"
		}
	}

	return nil
}

func (c *Config) ensureLocalRoot() error {
	info, err := os.Stat(c.LocalRoot)
	if err == nil {
		if !info.IsDir() {
			return errors.InvalidConfig(nil, "local root", "is not a directory")
		}
		return nil
	}

	if err := os.MkdirAll(c.LocalRoot, 0755); err != nil {
		return errors.InvalidConfig(err, "local root", "cannot be created")
	}

	return nil
}

func errInvalidOption(reason string) error {
	return errors.InvalidConfig(nil, "option", reason)
}
