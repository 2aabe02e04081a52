package platform

import (
	"testing"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"portrait.png", true},
		{"photo.JPG", true},
		{"affiche.jpeg", true},
		{"anim.gif", true},
		{"couverture.webp", true},
		{"montage.mp4", false},
		{"script.js", false},
		{"sans_extension", false},
		{"archive.tar.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IsImageFile(tt.filename); got != tt.expected {
				t.Errorf("IsImageFile(%q) = %v, expected %v", tt.filename, got, tt.expected)
			}
		})
	}
}
