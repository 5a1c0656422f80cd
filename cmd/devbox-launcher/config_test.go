package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePortPrecedence(t *testing.T) {
	root := t.TempDir()
	configYAML := "server:\n  default_port: 9005\n"
	if err := os.WriteFile(filepath.Join(root, "devbox.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DEVBOX_SERVER_PORT", "7001")
	t.Setenv("PORT", "7002")
	if got := resolvePort(root); got != "7001" {
		t.Errorf("expected DEVBOX_SERVER_PORT to win, got %s", got)
	}

	t.Setenv("DEVBOX_SERVER_PORT", "")
	if got := resolvePort(root); got != "7002" {
		t.Errorf("expected PORT to win, got %s", got)
	}

	t.Setenv("PORT", "")
	if got := resolvePort(root); got != "9005" {
		t.Errorf("expected devbox.yaml port, got %s", got)
	}
}

func TestResolvePortDefault(t *testing.T) {
	t.Setenv("DEVBOX_SERVER_PORT", "")
	t.Setenv("PORT", "")
	if got := resolvePort(t.TempDir()); got != "8000" {
		t.Errorf("expected default 8000, got %s", got)
	}
}

func TestConfiguredPortMalformed(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "devbox.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := configuredPort(path); got != "" {
		t.Errorf("expected empty port for malformed config, got %s", got)
	}
}
