package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Indirection points for tests.
var (
	fetchLatestTag    = latestReleaseTag
	fetchServerBinary = downloadServerBinary
)

const versionMarkerName = ".version"

// findServerBinary resolves the devbox server binary. In managed
// deployments with a known version it prefers the GitHub release,
// skipping the download when the version marker beside the binary
// already matches. Any remote failure falls through to the local
// fallback chain; only exhausting every candidate is fatal.
func findServerBinary(root string, deployment bool) (string, error) {
	platformName := serverBinaryName()
	buildDir := filepath.Join(root, "build")

	version := os.Getenv("LHA_SERVER_VERSION")
	if version == "" {
		tag, err := fetchLatestTag(devboxRepoURL)
		if err != nil {
			return "", fmt.Errorf("resolve latest release: %w", err)
		}
		version = tag
	}

	if version != "" && deployment {
		target := filepath.Join(buildDir, platformName)
		marker := filepath.Join(buildDir, versionMarkerName)
		if readVersionMarker(marker) == version && pathExists(target) {
			fmt.Printf("Using cached binary for version %s: %s\n", version, target)
			return target, nil
		}
		if fetchServerBinary(version, platformName, target) {
			writeVersionMarker(marker, version)
			return target, nil
		}
		fmt.Println("Failed to download from GitHub, falling back to local binaries...")
	}

	candidates := []string{
		filepath.Join(buildDir, platformName),
		filepath.Join(buildDir, "databricks-devbox"),
		filepath.Join(root, "databricks_devbox_go", "databricks-devbox"),
		filepath.Join(root, "databricks-devbox"),
	}
	for _, candidate := range candidates {
		if pathExists(candidate) {
			return candidate, nil
		}
	}

	var b strings.Builder
	b.WriteString("devbox server binary not found. Tried:\n")
	if version != "" {
		fmt.Fprintf(&b, "  - GitHub release %s: %s\n", version, platformName)
	}
	for _, candidate := range candidates {
		fmt.Fprintf(&b, "  - %s\n", candidate)
	}
	b.WriteString("\nOptions:\n")
	b.WriteString("  - Set LHA_SERVER_VERSION environment variable (e.g. '0.1.0')\n")
	b.WriteString("  - Or build locally: make build-go or make build-all")
	return "", errors.New(b.String())
}

func readVersionMarker(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Marker write failures are not worth failing the launch over; the
// worst case is a redundant re-download next run.
func writeVersionMarker(path, version string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, []byte(version), 0o644)
}
