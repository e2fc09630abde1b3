//go:build !linux

package data

import (
	"io/fs"
	"time"
)

// CreateTime falls back to the modification time where no birth time is exposed.
func CreateTime(path string, info fs.FileInfo) time.Time {
	return info.ModTime()
}
