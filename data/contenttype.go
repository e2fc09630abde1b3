package data

import (
	"maps"
	"path/filepath"
	"strings"
)

const (
	ContentTypeTextPlain       = "text/plain"
	ContentTypeTextHTML        = "text/html"
	ContentTypeTextCSS         = "text/css"
	ContentTypeTextJavaScript  = "text/javascript"
	ContentTypeTextCSV         = "text/csv"
	ContentTypeImageJPEG       = "image/jpeg"
	ContentTypeImagePNG        = "image/png"
	ContentTypeImageGIF        = "image/gif"
	ContentTypeImageWebP       = "image/webp"
	ContentTypeImageSVGXML     = "image/svg+xml"
	ContentTypeImageIcon       = "image/x-icon"
	ContentTypeAudioMpeg       = "audio/mpeg"
	ContentTypeAudioWAV        = "audio/wav"
	ContentTypeVideoMP4        = "video/mp4"
	ContentTypeVideoWebM       = "video/webm"
	ContentTypeApplicationPDF  = "application/pdf"
	ContentTypeApplicationZip  = "application/zip"
	ContentTypeApplicationJson = "application/json"
	ContentTypeApplicationXML  = "application/xml"
	ContentTypeFontWOFF2       = "font/woff2"
)

// ContentTypes maps lower-case file extensions (including the dot) to content types.
type ContentTypes map[string]string

var defaultContentTypes = ContentTypes{
	".txt":   ContentTypeTextPlain,
	".html":  ContentTypeTextHTML,
	".htm":   ContentTypeTextHTML,
	".css":   ContentTypeTextCSS,
	".js":    ContentTypeTextJavaScript,
	".csv":   ContentTypeTextCSV,
	".jpg":   ContentTypeImageJPEG,
	".jpeg":  ContentTypeImageJPEG,
	".png":   ContentTypeImagePNG,
	".gif":   ContentTypeImageGIF,
	".webp":  ContentTypeImageWebP,
	".svg":   ContentTypeImageSVGXML,
	".ico":   ContentTypeImageIcon,
	".mp3":   ContentTypeAudioMpeg,
	".wav":   ContentTypeAudioWAV,
	".mp4":   ContentTypeVideoMP4,
	".webm":  ContentTypeVideoWebM,
	".pdf":   ContentTypeApplicationPDF,
	".zip":   ContentTypeApplicationZip,
	".json":  ContentTypeApplicationJson,
	".xml":   ContentTypeApplicationXML,
	".woff2": ContentTypeFontWOFF2,
}

// DefaultContentTypes returns a copy of the built-in table.
func DefaultContentTypes() ContentTypes {
	return maps.Clone(defaultContentTypes)
}

// Lookup returns the content type registered for the extension of name.
// Unknown extensions resolve to false so the caller can leave it unset.
func (ct ContentTypes) Lookup(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}

	contentType, exists := ct[ext]
	return contentType, exists
}

// With returns a copy of the table extended (or overridden) by extra.
func (ct ContentTypes) With(extra map[string]string) ContentTypes {
	merged := maps.Clone(ct)
	if merged == nil {
		merged = make(ContentTypes, len(extra))
	}
	for ext, contentType := range extra {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		merged[ext] = contentType
	}

	return merged
}
