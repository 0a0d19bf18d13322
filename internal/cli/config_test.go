package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "augment.toml")
	data := `
[skew]
mode = "corner"
magnitude = 2.5

[rotate]
max_left = 10
max_right = 15
fill = "#336699"

[shear]
axis = "y"
max_left = 5
max_right = 5

[distort]
grid_width = 8
grid_height = 6
magnitude = 4
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.Skew.Mode != "corner" || cfg.Skew.Magnitude != 2.5 {
		t.Errorf("skew defaults: got %+v", cfg.Skew)
	}
	if cfg.Rotate.MaxLeft != 10 || cfg.Rotate.MaxRight != 15 || cfg.Rotate.Fill != "#336699" {
		t.Errorf("rotate defaults: got %+v", cfg.Rotate)
	}
	if cfg.Shear.Axis != "y" {
		t.Errorf("shear defaults: got %+v", cfg.Shear)
	}
	if cfg.Distort.GridWidth != 8 || cfg.Distort.GridHeight != 6 || cfg.Distort.Magnitude != 4 {
		t.Errorf("distort defaults: got %+v", cfg.Distort)
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") failed: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("got %+v, want zero config", cfg)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
