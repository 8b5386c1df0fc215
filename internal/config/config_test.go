package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Window.Width != 900 || s.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 900x600", s.Window.Width, s.Window.Height)
	}
	if s.Window.Title != "still-life" {
		t.Errorf("title = %q", s.Window.Title)
	}
	if s.Render.FPSLimit != 60 {
		t.Errorf("fps limit = %d, want 60", s.Render.FPSLimit)
	}
	if s.Render.JitterSeed != 1 {
		t.Errorf("jitter seed = %d, want 1", s.Render.JitterSeed)
	}
	if s.Assets.Dir != "assets" {
		t.Errorf("assets dir = %q, want assets", s.Assets.Dir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != Default() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[window]
width = 1280

[render]
jitter_seed = 42
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// Set keys override, unset keys keep their default.
	if s.Window.Width != 1280 {
		t.Errorf("width = %d, want 1280", s.Window.Width)
	}
	if s.Window.Height != 600 {
		t.Errorf("height = %d, want default 600", s.Window.Height)
	}
	if s.Render.JitterSeed != 42 {
		t.Errorf("jitter seed = %d, want 42", s.Render.JitterSeed)
	}
	if s.Render.FPSLimit != 60 {
		t.Errorf("fps limit = %d, want default 60", s.Render.FPSLimit)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("window = {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed TOML should fail to load")
	}
}
