package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stubServerFetch(t *testing.T, tag string, tagErr error, downloads *int, succeed bool) {
	t.Helper()
	oldTag := fetchLatestTag
	oldFetch := fetchServerBinary
	t.Cleanup(func() {
		fetchLatestTag = oldTag
		fetchServerBinary = oldFetch
	})
	fetchLatestTag = func(repoURL string) (string, error) {
		return tag, tagErr
	}
	fetchServerBinary = func(version, binaryName, target string) bool {
		*downloads++
		if !succeed {
			return false
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(target, []byte("binary"), 0o755); err != nil {
			t.Fatal(err)
		}
		return true
	}
}

func TestFindServerBinaryCacheHit(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "v1.2.3")

	buildDir := filepath.Join(root, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(buildDir, serverBinaryName())
	if err := os.WriteFile(target, []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(buildDir, ".version"), []byte("v1.2.3"), 0o644); err != nil {
		t.Fatal(err)
	}

	downloads := 0
	stubServerFetch(t, "", nil, &downloads, true)

	got, err := findServerBinary(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != target {
		t.Errorf("expected %s, got %s", target, got)
	}
	if downloads != 0 {
		t.Errorf("expected no downloads on cache hit, got %d", downloads)
	}
}

func TestFindServerBinaryCacheMiss(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "v1.3.0")

	buildDir := filepath.Join(root, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(buildDir, serverBinaryName())
	if err := os.WriteFile(target, []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(buildDir, ".version"), []byte("v1.2.3"), 0o644); err != nil {
		t.Fatal(err)
	}

	downloads := 0
	stubServerFetch(t, "", nil, &downloads, true)

	got, err := findServerBinary(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != target {
		t.Errorf("expected %s, got %s", target, got)
	}
	if downloads != 1 {
		t.Errorf("expected one download on version change, got %d", downloads)
	}
	if marker := readVersionMarker(filepath.Join(buildDir, ".version")); marker != "v1.3.0" {
		t.Errorf("expected marker v1.3.0, got %q", marker)
	}
}

func TestFindServerBinaryNoDownloadOutsideDeployment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "v1.2.3")

	if err := os.WriteFile(filepath.Join(root, "databricks-devbox"), []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}

	downloads := 0
	stubServerFetch(t, "", nil, &downloads, true)

	got, err := findServerBinary(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(root, "databricks-devbox") {
		t.Errorf("unexpected path: %s", got)
	}
	if downloads != 0 {
		t.Errorf("expected no downloads outside deployment mode, got %d", downloads)
	}
}

func TestFindServerBinaryFallbackOrdering(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "")

	downloads := 0
	stubServerFetch(t, "", nil, &downloads, true)

	// Only the third candidate exists.
	legacy := filepath.Join(root, "databricks_devbox_go")
	if err := os.MkdirAll(legacy, 0o755); err != nil {
		t.Fatal(err)
	}
	third := filepath.Join(legacy, "databricks-devbox")
	if err := os.WriteFile(third, []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := findServerBinary(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != third {
		t.Errorf("expected %s, got %s", third, got)
	}
}

func TestFindServerBinaryDownloadFailureFallsBack(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "v1.2.3")

	fallback := filepath.Join(root, "build", "databricks-devbox")
	if err := os.MkdirAll(filepath.Dir(fallback), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fallback, []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}

	downloads := 0
	stubServerFetch(t, "", nil, &downloads, false)

	got, err := findServerBinary(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != fallback {
		t.Errorf("expected %s, got %s", fallback, got)
	}
	if downloads != 1 {
		t.Errorf("expected one download attempt, got %d", downloads)
	}
}

func TestFindServerBinaryExhaustionEnumeratesPaths(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "")

	downloads := 0
	stubServerFetch(t, "", nil, &downloads, true)

	_, err := findServerBinary(root, false)
	if err == nil {
		t.Fatal("expected error when no binary exists")
	}

	expected := []string{
		filepath.Join(root, "build", serverBinaryName()),
		filepath.Join(root, "build", "databricks-devbox"),
		filepath.Join(root, "databricks_devbox_go", "databricks-devbox"),
		filepath.Join(root, "databricks-devbox"),
	}
	for _, path := range expected {
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error message missing path %s:\n%s", path, err.Error())
		}
	}
	if !strings.Contains(err.Error(), "LHA_SERVER_VERSION") {
		t.Errorf("error message missing remediation hint:\n%s", err.Error())
	}
}

func TestFindServerBinaryTagErrorPropagates(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LHA_SERVER_VERSION", "")

	downloads := 0
	stubServerFetch(t, "", os.ErrDeadlineExceeded, &downloads, true)

	if _, err := findServerBinary(root, true); err == nil {
		t.Fatal("expected release fetch error to propagate")
	}
}
