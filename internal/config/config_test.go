package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultTemplate == "" {
		t.Error("expected DefaultTemplate to be set")
	}
	if cfg.DefaultStep <= 0 {
		t.Errorf("expected positive DefaultStep, got %d", cfg.DefaultStep)
	}
	if cfg.NoColor {
		t.Error("expected NoColor to be false by default")
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if dir == "" {
		t.Error("expected non-empty config directory")
	}
	if !strings.Contains(dir, "ebsedit") {
		t.Errorf("expected config dir to contain ebsedit, got %q", dir)
	}
}

func TestLoadNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("expected defaults when no file exists, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := Config{
		DefaultTemplate: "stylized{i%3}.png",
		DefaultStep:     5,
		NoColor:         true,
	}
	if err := Save(&want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
