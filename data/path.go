package data

import (
	"path"
	"path/filepath"
	"strings"
)

// KeyStripDelimiter separates multiple substrings inside a key strip-prefix.
const KeyStripDelimiter = "|"

const localSeparator = string(filepath.Separator)

// StorageRoot pairs the absolute local root directory with the public URL
// prefix that serves the same tree.
type StorageRoot struct {
	LocalRoot string
	URLPrefix string
}

// Translator converts between virtual paths, absolute local paths, public URLs
// and remote object keys. All methods are pure; the only state is the
// configured root and strip-prefixes.
type Translator struct {
	root           StorageRoot
	containerStrip string
	keyStrip       string
}

func NewTranslator(root StorageRoot, containerStrip, keyStrip string) *Translator {
	return &Translator{
		root: StorageRoot{
			LocalRoot: filepath.Clean(root.LocalRoot),
			URLPrefix: strings.TrimRight(root.URLPrefix, "/"),
		},
		containerStrip: containerStrip,
		keyStrip:       keyStrip,
	}
}

// Root returns the normalized storage root.
func (t *Translator) Root() StorageRoot {
	return t.root
}

// ToFullPath maps a virtual path onto the local root. Paths already rooted
// below the local root are returned unchanged.
func (t *Translator) ToFullPath(virtualPath string) string {
	if hasPathPrefix(virtualPath, t.root.LocalRoot, localSeparator) {
		return virtualPath
	}

	rel := strings.TrimLeft(toLocalSeparators(virtualPath), localSeparator)
	return filepath.Join(t.root.LocalRoot, rel)
}

// ToRelativePath accepts either a full local path or a public URL and returns
// the virtual path it denotes.
func (t *Translator) ToRelativePath(fullPathOrURL string) string {
	p := fullPathOrURL
	switch {
	case hasPathPrefix(toLocalSeparators(p), t.root.LocalRoot, localSeparator):
		p = toLocalSeparators(p)[len(t.root.LocalRoot):]
	case t.root.URLPrefix != "" && hasPathPrefix(p, t.root.URLPrefix, "/"):
		p = p[len(t.root.URLPrefix):]
	}

	return strings.TrimLeft(toLocalSeparators(p), localSeparator)
}

// ToURL joins the virtual path onto the public URL prefix with a single slash.
func (t *Translator) ToURL(virtualPath string) string {
	p := strings.TrimLeft(virtualPath, `/\`)
	p = strings.TrimRight(toSlash(p), "/")

	return t.root.URLPrefix + "/" + p
}

// Contains reports whether fullPath stays within the local root once cleaned.
func (t *Translator) Contains(fullPath string) bool {
	rel, err := filepath.Rel(t.root.LocalRoot, filepath.Clean(fullPath))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+localSeparator)
}

// ObjectKeyForFile derives the remote key of a file. The parent directory
// names the container and key; a file directly at the root uses its own name
// as the container.
func (t *Translator) ObjectKeyForFile(virtualPath string) ObjectKey {
	p := strings.Trim(toSlash(virtualPath), "/")

	dir, name := path.Split(p)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		dir = p
	}

	return ToObjectKey(dir, name, t.containerStrip, t.keyStrip)
}

// ObjectKeyForDirectory derives the container and key prefix that cover every
// object below the directory.
func (t *Translator) ObjectKeyForDirectory(virtualPath string) ObjectKey {
	return ToObjectKey(virtualPath, "", t.containerStrip, t.keyStrip)
}

// ToObjectKey splits virtualPath into container (first segment) and key
// (remaining segments plus fileName). stripForContainer is removed before the
// container is taken; every '|'-separated part of stripForKey is removed from
// the remainder in sequence.
func ToObjectKey(virtualPath, fileName, stripForContainer, stripForKey string) ObjectKey {
	p := toSlash(virtualPath)
	if stripForContainer != "" {
		p = strings.ReplaceAll(p, toSlash(stripForContainer), "")
	}
	p = strings.Trim(p, "/")

	container, rest, found := strings.Cut(p, "/")
	if !found {
		return ObjectKey{Container: p, Key: fileName}
	}

	for _, strip := range strings.Split(stripForKey, KeyStripDelimiter) {
		if strip != "" {
			rest = strings.ReplaceAll(rest, toSlash(strip), "")
		}
	}

	rest = joinSegments(rest)
	if rest != "" {
		rest += "/"
	}

	return ObjectKey{Container: container, Key: rest + fileName}
}

func joinSegments(p string) string {
	segments := strings.Split(p, "/")
	kept := segments[:0]
	for _, segment := range segments {
		if segment != "" {
			kept = append(kept, segment)
		}
	}

	return strings.Join(kept, "/")
}

// hasPathPrefix checks if p equals prefix or continues with sep right after it.
func hasPathPrefix(p, prefix, sep string) bool {
	if prefix == "" || prefix == sep {
		return prefix != "" && strings.HasPrefix(p, prefix)
	}

	return p == prefix || strings.HasPrefix(p, prefix+sep)
}

func toSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

func toLocalSeparators(p string) string {
	return filepath.FromSlash(toSlash(p))
}
