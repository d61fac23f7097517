package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultLifeConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, `
grid:
  width: 40
  height: 30
timing:
  default_delay_ms: 250
engine:
  workers: 4
  pattern: acorn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 40 || cfg.Grid.Height != 30 {
		t.Errorf("grid = %dx%d, expected 40x30", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Engine.Workers != 4 || cfg.Engine.Pattern != "acorn" {
		t.Errorf("engine = %+v, expected workers 4 pattern acorn", cfg.Engine)
	}
	// Unset keys keep their defaults.
	if cfg.Timing.MinDelayMS != 100 || cfg.Random.Sparse != 0.1 {
		t.Errorf("expected untouched keys to keep defaults, got %+v", cfg)
	}

	ec := cfg.EngineConfig(9)
	if ec.DefaultDelay != 250*time.Millisecond || ec.Seed != 9 || ec.Width != 40 {
		t.Errorf("EngineConfig() = %+v", ec)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "absent.yaml")
		}},
		{"bad yaml", func(t *testing.T) string {
			return writeFile(t, "grid: [1, 2")
		}},
		{"zero grid", func(t *testing.T) string {
			return writeFile(t, "grid:\n  width: 0\n")
		}},
		{"delay below floor", func(t *testing.T) string {
			return writeFile(t, "timing:\n  default_delay_ms: 50\n")
		}},
		{"bad cell", func(t *testing.T) string {
			return writeFile(t, "cell:\n  width: 0\n")
		}},
		{"bad probability", func(t *testing.T) string {
			return writeFile(t, "random:\n  dense: 3\n")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path(t)); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestLoadSearchPathFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadSearchPathUsesLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("grid:\n  width: 64\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Grid.Width != 64 {
		t.Errorf("grid width = %d, expected 64", cfg.Grid.Width)
	}
}
