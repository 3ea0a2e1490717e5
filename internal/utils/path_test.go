package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tilde prefix",
			input: "~/.config/calrem/config.yaml",
			want:  filepath.Join(home, ".config/calrem/config.yaml"),
		},
		{
			name:  "bare tilde",
			input: "~",
			want:  home,
		},
		{
			name:  "absolute path unchanged",
			input: "/etc/calrem/config.yaml",
			want:  "/etc/calrem/config.yaml",
		},
		{
			name:  "relative path unchanged",
			input: "config.yaml",
			want:  "config.yaml",
		},
		{
			name:  "tilde in the middle unchanged",
			input: "/tmp/~/x",
			want:  "/tmp/~/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.input); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
