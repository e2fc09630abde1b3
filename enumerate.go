package mirrorfs

import (
	"context"
	"os"
	"path"
	"path/filepath"
)

func (mfs *MirroredFileSystem) GetDirectories(ctx context.Context, dir string) []string {
	return mfs.enumerate(dir, "*", true)
}

func (mfs *MirroredFileSystem) GetFiles(ctx context.Context, dir string, filter string) []string {
	if filter == "" {
		filter = "*"
	}

	return mfs.enumerate(dir, filter, false)
}

// enumerate lists the immediate children of dir as virtual paths. Failures
// are logged and produce an empty list instead of an error.
func (mfs *MirroredFileSystem) enumerate(dir, pattern string, directories bool) []string {
	result := []string{}

	rel, full, err := mfs.resolve(dir)
	if err != nil {
		mfs.log.Warn("Unable to enumerate '%s': %v", dir, err)
		return result
	}

	if _, err := filepath.Match(pattern, ""); err != nil {
		mfs.log.Warn("Invalid filter '%s' for '%s': %v", pattern, rel, err)
		return result
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		mfs.log.Warn("Unable to enumerate '%s': %v", rel, err)
		return result
	}

	for _, entry := range entries {
		if entry.IsDir() != directories {
			continue
		}
		if matched, _ := filepath.Match(pattern, entry.Name()); !matched {
			continue
		}

		result = append(result, path.Join(rel, entry.Name()))
	}

	return result
}
