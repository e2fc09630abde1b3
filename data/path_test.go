package data

import (
	"path/filepath"
	"testing"
)

func newTestTranslator(urlPrefix string) (*Translator, string) {
	root := filepath.FromSlash("/srv/media")
	return NewTranslator(StorageRoot{LocalRoot: root, URLPrefix: urlPrefix}, "", ""), root
}

func TestToObjectKey(t *testing.T) {
	tests := []struct {
		name           string
		virtualPath    string
		fileName       string
		stripContainer string
		stripKey       string
		expected       ObjectKey
	}{
		{name: "file", virtualPath: "images/2024", fileName: "pic.jpg", expected: ObjectKey{"images", "2024/pic.jpg"}},
		{name: "directory", virtualPath: "media/2024", expected: ObjectKey{"media", "2024/"}},
		{name: "container-only", virtualPath: "media", fileName: "a.jpg", expected: ObjectKey{"media", "a.jpg"}},
		{name: "backslashes", virtualPath: `images\2024`, fileName: "pic.jpg", expected: ObjectKey{"images", "2024/pic.jpg"}},
		{name: "leading-slash", virtualPath: "/images/2024/", fileName: "pic.jpg", expected: ObjectKey{"images", "2024/pic.jpg"}},
		{name: "strip-container", virtualPath: "site/media/2024", fileName: "a.jpg", stripContainer: "site/", expected: ObjectKey{"media", "2024/a.jpg"}},
		{name: "strip-key", virtualPath: "media/cache/2024", fileName: "a.jpg", stripKey: "cache/", expected: ObjectKey{"media", "2024/a.jpg"}},
		{name: "strip-key-multiple", virtualPath: "media/cache/thumbs/2024", fileName: "a.jpg", stripKey: "cache/|thumbs/", expected: ObjectKey{"media", "2024/a.jpg"}},
		{name: "strip-key-everything", virtualPath: "media/cache", fileName: "a.jpg", stripKey: "cache", expected: ObjectKey{"media", "a.jpg"}},
		{name: "empty", virtualPath: "", fileName: "", expected: ObjectKey{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(tst *testing.T) {
			got := ToObjectKey(tt.virtualPath, tt.fileName, tt.stripContainer, tt.stripKey)
			if got != tt.expected {
				tst.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestTranslator_ObjectKeys(t *testing.T) {
	tr, _ := newTestTranslator("/media")

	files := map[string]ObjectKey{
		"images/2024/pic.jpg": {"images", "2024/pic.jpg"},
		"docs/a.txt":          {"docs", "a.txt"},
		"logo.png":            {"logo.png", "logo.png"},
		"/logo.png":           {"logo.png", "logo.png"},
	}
	for path, expected := range files {
		if got := tr.ObjectKeyForFile(path); got != expected {
			t.Errorf("ObjectKeyForFile(%q): expected %+v, got %+v", path, expected, got)
		}
	}

	directories := map[string]ObjectKey{
		"media/2024":    {"media", "2024/"},
		"media/2024/01": {"media", "2024/01/"},
		"media":         {"media", ""},
	}
	for path, expected := range directories {
		if got := tr.ObjectKeyForDirectory(path); got != expected {
			t.Errorf("ObjectKeyForDirectory(%q): expected %+v, got %+v", path, expected, got)
		}
	}
}

func TestTranslator_ToFullPath(t *testing.T) {
	tr, root := newTestTranslator("/media")
	expected := filepath.Join(root, "images", "pic.jpg")

	for _, path := range []string{"images/pic.jpg", "/images/pic.jpg", `images\pic.jpg`, expected} {
		if got := tr.ToFullPath(path); got != expected {
			t.Errorf("ToFullPath(%q): expected %q, got %q", path, expected, got)
		}
	}

	if got := tr.ToFullPath(""); got != root {
		t.Errorf("ToFullPath(\"\"): expected %q, got %q", root, got)
	}
}

func TestTranslator_ToRelativePath(t *testing.T) {
	tr, root := newTestTranslator("https://cdn.example.com/media")
	expected := filepath.Join("images", "pic.jpg")

	tests := []struct {
		input    string
		expected string
	}{
		{input: filepath.Join(root, "images", "pic.jpg"), expected: expected},
		{input: "https://cdn.example.com/media/images/pic.jpg", expected: expected},
		{input: "/images/pic.jpg", expected: expected},
		{input: "images/pic.jpg", expected: expected},
		{input: root, expected: ""},
	}
	for _, tt := range tests {
		if got := tr.ToRelativePath(tt.input); got != tt.expected {
			t.Errorf("ToRelativePath(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}

	if got := tr.ToRelativePath(filepath.FromSlash("/srv/mediax/a.jpg")); got == "a.jpg" {
		t.Errorf("Expected sibling directory not to be treated as root")
	}
}

func TestTranslator_ToURL(t *testing.T) {
	tr, _ := newTestTranslator("/media/")

	tests := map[string]string{
		"images/pic.jpg":   "/media/images/pic.jpg",
		"/images/pic.jpg/": "/media/images/pic.jpg",
		`images\pic.jpg`:   "/media/images/pic.jpg",
		"":                 "/media/",
	}
	for input, want := range tests {
		if got := tr.ToURL(input); got != want {
			t.Errorf("ToURL(%q): expected %q, got %q", input, want, got)
		}
	}
}

func TestTranslator_Contains(t *testing.T) {
	tr, root := newTestTranslator("/media")

	tests := map[string]bool{
		root:                                     true,
		filepath.Join(root, "a.jpg"):             true,
		filepath.Join(root, "..", "etc"):         false,
		filepath.FromSlash("/srv/mediax/a.jpg"):  false,
		root + string(filepath.Separator) + "..": false,
	}
	for path, want := range tests {
		if got := tr.Contains(path); got != want {
			t.Errorf("Contains(%q): expected %t, got %t", path, want, got)
		}
	}
}
