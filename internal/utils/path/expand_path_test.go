package path

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty", "", "", true},
		{"bare tilde", "~", home, false},
		{"tilde prefix", "~/envs/jupyter", filepath.Join(home, "envs", "jupyter"), false},
		{"relative untouched", "jupyter-venv", "jupyter-venv", false},
		{"absolute untouched", "/opt/jupyter-venv", "/opt/jupyter-venv", false},
		{"tilde mid-path untouched", "/data/~backup", "/data/~backup", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandPath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
