package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFramePath(t *testing.T) {
	tests := []struct {
		template string
		frame    int
		want     string
	}{
		{`keys\[#####].png`, 12, `keys\00012.png`},
		{`keys\[#####].png`, 123456, `keys\123456.png`},
		{"video/[##].jpg", 7, "video/07.jpg"},
		{"[#]", 3, "3"},
		{"no placeholder.png", 9, "no placeholder.png"},
		{"odd[#x#].png", 1, "odd[#x#].png"},
		{"empty[].png", 1, "empty[].png"},
		{"open[###.png", 1, "open[###.png"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			if got := FramePath(tt.template, tt.frame); got != tt.want {
				t.Errorf("FramePath(%q, %d) = %q, want %q", tt.template, tt.frame, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	got := NormalizePath(`keys\00012.png`)
	if strings.Contains(got, `\`) && os.PathSeparator != '\\' {
		t.Errorf("expected separators to be normalized, got %q", got)
	}
	if !strings.HasSuffix(got, "00012.png") {
		t.Errorf("expected file name to survive, got %q", got)
	}
}

func TestRenderMissingFile(t *testing.T) {
	if _, err := Render(filepath.Join(t.TempDir(), "missing.png"), 40); err == nil {
		t.Error("expected error for missing image")
	}
}
