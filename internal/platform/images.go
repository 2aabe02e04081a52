package platform

import (
	"path/filepath"
	"strings"
)

// ImageExtensions lists the file extensions accepted by the photo picker
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// IsImageFile reports whether the file name carries an image extension
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
