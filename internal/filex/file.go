// Package filex loads local files for staging and detects their content type.
package filex

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// File is a local file read into memory, ready to be staged for upload.
type File struct {
	Name        string
	Content     []byte
	ContentType string
}

// Read loads the file at path. The content type is derived from the file
// extension; unknown extensions fall back to application/octet-stream.
func Read(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	return File{Name: name, Content: content, ContentType: ContentTypeByName(name)}, nil
}

// ContentTypeByName maps a file name to a MIME type via its extension.
func ContentTypeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct := mime.TypeByExtension(ext); ct != "" {
		// strip optional parameters like "; charset=utf-8"
		if i := strings.Index(ct, ";"); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		return ct
	}
	return "application/octet-stream"
}
