package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTunablesDefaults(t *testing.T) {
	t.Parallel()

	tunables, err := LoadTunables("")
	if err != nil {
		t.Fatalf("LoadTunables: %v", err)
	}
	want := Tunables{StrongPositive: 0.8, StrongNegative: 0.7, EmotionOverride: 0.4}
	if tunables != want {
		t.Fatalf("tunables = %+v, want %+v", tunables, want)
	}
}

func TestLoadTunablesMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	tunables, err := LoadTunables(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadTunables: %v", err)
	}
	if tunables != DefaultTunables() {
		t.Fatalf("tunables = %+v, want defaults", tunables)
	}
}

func TestLoadTunablesPartialOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tunables.toml")
	if err := os.WriteFile(path, []byte("strong_positive = 0.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tunables, err := LoadTunables(path)
	if err != nil {
		t.Fatalf("LoadTunables: %v", err)
	}
	if tunables.StrongPositive != 0.9 {
		t.Fatalf("StrongPositive = %v, want 0.9", tunables.StrongPositive)
	}
	if tunables.StrongNegative != 0.7 || tunables.EmotionOverride != 0.4 {
		t.Fatalf("unset fields changed: %+v", tunables)
	}
}

func TestLoadTunablesRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tunables.toml")
	if err := os.WriteFile(path, []byte("emotion_override = 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTunables(path); err == nil {
		t.Fatal("expected an error for a threshold outside (0, 1]")
	}
}
