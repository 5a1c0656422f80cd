package main

import "runtime"

// serverBinaryName maps the host platform to the release-asset name of
// the databricks-devbox server binary. Unknown platforms get the
// generic name and fail later at download time if no asset exists.
func serverBinaryName() string {
	return serverBinaryNameFor(runtime.GOOS, runtime.GOARCH)
}

func serverBinaryNameFor(goos, goarch string) string {
	switch goos {
	case "darwin", "linux":
		return "databricks-devbox-" + goos + "-" + normalizeArch(goarch)
	case "windows":
		return "databricks-devbox-windows-amd64.exe"
	default:
		return "databricks-devbox"
	}
}

// codeServerPlatform returns the (os, arch) pair used in code-server
// release-asset names. Unsupported platforms fall back to linux/amd64.
func codeServerPlatform() (string, string) {
	return codeServerPlatformFor(runtime.GOOS, runtime.GOARCH)
}

func codeServerPlatformFor(goos, goarch string) (string, string) {
	switch goos {
	case "darwin", "linux":
		return goos, normalizeArch(goarch)
	default:
		return "linux", "amd64"
	}
}

// databricksCLIPlatform returns the (os, arch) pair used in Databricks
// CLI release-asset names. Windows is amd64 only; anything else
// unsupported falls back to linux/amd64.
func databricksCLIPlatform() (string, string) {
	return databricksCLIPlatformFor(runtime.GOOS, runtime.GOARCH)
}

func databricksCLIPlatformFor(goos, goarch string) (string, string) {
	switch goos {
	case "darwin", "linux":
		return goos, normalizeArch(goarch)
	case "windows":
		return "windows", "amd64"
	default:
		return "linux", "amd64"
	}
}

func normalizeArch(goarch string) string {
	if goarch == "arm64" {
		return "arm64"
	}
	return "amd64"
}
