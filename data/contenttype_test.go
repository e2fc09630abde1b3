package data

import "testing"

func TestContentTypes_Lookup(t *testing.T) {
	ct := DefaultContentTypes()

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{name: "images/pic.jpg", expected: ContentTypeImageJPEG, found: true},
		{name: "images/PIC.JPEG", expected: ContentTypeImageJPEG, found: true},
		{name: "logo.png", expected: ContentTypeImagePNG, found: true},
		{name: "archive.tar.zip", expected: ContentTypeApplicationZip, found: true},
		{name: "data.unknownext", found: false},
		{name: "README", found: false},
	}

	for _, tt := range tests {
		got, found := ct.Lookup(tt.name)
		if found != tt.found || got != tt.expected {
			t.Errorf("Lookup(%q): expected (%q, %t), got (%q, %t)", tt.name, tt.expected, tt.found, got, found)
		}
	}
}

func TestContentTypes_With(t *testing.T) {
	base := DefaultContentTypes()
	extended := base.With(map[string]string{
		"AVIF": "image/avif",
		".jpg": "image/pjpeg",
	})

	if got, _ := extended.Lookup("a.avif"); got != "image/avif" {
		t.Errorf("Expected image/avif, got %q", got)
	}
	if got, _ := extended.Lookup("a.jpg"); got != "image/pjpeg" {
		t.Errorf("Expected override image/pjpeg, got %q", got)
	}
	if got, _ := base.Lookup("a.jpg"); got != ContentTypeImageJPEG {
		t.Errorf("Expected base table untouched, got %q", got)
	}
}
