package platform

import (
	"testing"
)

func TestValidateExternalURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		wantErr bool
	}{
		{"valid http", "http://www.allocine.fr/film/fichefilm_gen_cfilm=1532.html", false},
		{"valid https", "https://www.imdb.com/title/tt0110912/", false},
		{"empty", "", true},
		{"no scheme", "www.imdb.com/title/tt0110912/", true},
		{"file scheme", "file:///etc/passwd", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"no host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExternalURL(tt.rawURL)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExternalURL(%q) error = %v, expected error %v",
					tt.rawURL, err, tt.wantErr)
			}
		})
	}
}

func TestOpenURL_InvalidURL(t *testing.T) {
	err := OpenURL("pas-une-url")
	if err == nil {
		t.Error("Expected error for invalid URL, got nil")
	}
}
