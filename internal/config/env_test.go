package config

import (
	"os"
	"path/filepath"
	"testing"
)

func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadEnv(t *testing.T) {
	unset(t, "ARCADE_TEST_PORT", "ARCADE_TEST_ORIGIN")
	t.Setenv("ARCADE_TEST_KEEP", "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	content := "ARCADE_TEST_PORT=4000\nARCADE_TEST_ORIGIN=http://localhost:5173\nARCADE_TEST_KEEP=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("got %v, want missing files skipped", err)
	}
	if got, want := Env("ARCADE_TEST_PORT", "3001"), "4000"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := Env("ARCADE_TEST_ORIGIN", "*"), "http://localhost:5173"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := Env("ARCADE_TEST_KEEP", ""), "from-process"; got != want {
		t.Fatalf("got %q, want the process value to win", got)
	}
}

func TestEnvFallback(t *testing.T) {
	unset(t, "ARCADE_TEST_UNSET")
	if got, want := Env("ARCADE_TEST_UNSET", "3001"), "3001"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	t.Setenv("ARCADE_TEST_UNSET", "")
	if got, want := Env("ARCADE_TEST_UNSET", "3001"), "3001"; got != want {
		t.Fatalf("got %q, want fallback for an empty value", got)
	}
}
