package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromOverridePath(t *testing.T) {
	dir := t.TempDir()
	data := "path: " + filepath.Join(dir, "trips") + "\nmargin: 2\ngap: 3\nlead: 36h\nmaxdays: 90\n"
	if err := os.WriteFile(filepath.Join(dir, ".rangepick.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("RANGEPICK_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "trips") {
		t.Fatalf("path = %q", cfg.BasePath())
	}
	if sp := cfg.Spacing(); sp.Margin != 2 || sp.Gap != 3 {
		t.Fatalf("spacing = %+v", sp)
	}
	if cfg.Lead() != 36*time.Hour || cfg.MaxDays() != 90 {
		t.Fatalf("lead=%s maxdays=%d", cfg.Lead(), cfg.MaxDays())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RANGEPICK_CONFIG_PATH", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if filepath.Base(cfg.BasePath()) != ".rangepick" || !filepath.IsAbs(cfg.BasePath()) {
		t.Fatalf("expected expanded default path, got %q", cfg.BasePath())
	}
	if sp := cfg.Spacing(); sp.Margin != 1 || sp.Gap != 1 {
		t.Fatalf("spacing = %+v", sp)
	}
	if cfg.Lead() != 0 || cfg.MaxDays() != 0 {
		t.Fatalf("expected no lead and no horizon")
	}
}

func TestBounds(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	minDate, maxDate := Bounds(StaticConfig{LeadTime: 48 * time.Hour, DaysAhead: 30}, now)
	if !minDate.Equal(now.Add(48 * time.Hour)) {
		t.Fatalf("min = %v", minDate)
	}
	if !maxDate.Equal(time.Date(2025, time.July, 3, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("max = %v", maxDate)
	}
	if _, maxDate := Bounds(StaticConfig{}, now); !maxDate.IsZero() {
		t.Fatalf("expected unbounded max")
	}
}
