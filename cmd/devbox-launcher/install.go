package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	defaultCodeServerVersion    = "4.104.1"
	defaultDatabricksCLIVersion = "v0.270.0"
)

// installCodeServer makes sure code-server is available, downloading
// the release tarball into ~/.local/lib when it is not. Best-effort:
// failures are reported and swallowed, the launch continues without it.
func installCodeServer(env *launchEnv, version string) bool {
	if _, err := exec.LookPath("code-server"); err == nil {
		fmt.Println("code-server is already installed")
		return true
	}

	ver := strings.TrimPrefix(version, "v")
	fmt.Printf("Installing code-server v%s...\n", ver)

	home := userHome()
	localLib := filepath.Join(home, ".local", "lib")
	localBin := filepath.Join(home, ".local", "bin")
	for _, dir := range []string{localLib, localBin} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			printWarning(fmt.Sprintf("failed to create %s: %v", dir, err))
			return false
		}
	}

	osName, arch := codeServerPlatform()
	filename := fmt.Sprintf("code-server-%s-%s-%s.tar.gz", ver, osName, arch)
	url := fmt.Sprintf("https://github.com/coder/code-server/releases/download/v%s/%s", ver, filename)
	tarball := filepath.Join(localLib, filename)

	if err := downloadFile(url, tarball); err != nil {
		printWarning(fmt.Sprintf("failed to install code-server: %v", err))
		return false
	}

	fmt.Printf("Extracting %s...\n", filename)
	if err := extractTarGz(tarball, localLib); err != nil {
		printWarning(fmt.Sprintf("failed to extract %s: %v", filename, err))
		return false
	}

	// The tarball unpacks to a platform-suffixed directory; move it to
	// a stable versioned name so PATH entries survive re-installs.
	extracted := filepath.Join(localLib, fmt.Sprintf("code-server-%s-%s-%s", ver, osName, arch))
	target := filepath.Join(localLib, "code-server-"+ver)
	if pathExists(extracted) {
		os.RemoveAll(target)
		if err := os.Rename(extracted, target); err != nil {
			printWarning(fmt.Sprintf("failed to move %s: %v", extracted, err))
			return false
		}
	}

	binary := filepath.Join(target, "bin", "code-server")
	if err := markExecutable(binary); err != nil {
		printWarning(fmt.Sprintf("failed to mark %s executable: %v", binary, err))
		return false
	}
	os.Remove(tarball)

	binDir := filepath.Join(target, "bin")
	env.PrependPath(binDir)

	printSuccess(fmt.Sprintf("code-server %s installed successfully", ver))
	fmt.Printf("Binary location: %s\n", pathStyle.Render(binary))
	fmt.Printf("Added to PATH: %s\n", pathStyle.Render(binDir))
	return true
}

// installDatabricksCLI makes sure the databricks CLI is available,
// downloading and unpacking the release archive when it is not.
// Best-effort, same policy as installCodeServer.
func installDatabricksCLI(env *launchEnv, version string) bool {
	if _, err := exec.LookPath("databricks"); err == nil {
		fmt.Println("databricks CLI is already installed")
		return true
	}

	fmt.Printf("Installing Databricks CLI %s...\n", version)

	home := userHome()
	localLib := filepath.Join(home, ".local", "lib")
	localBin := filepath.Join(home, ".local", "bin")
	for _, dir := range []string{localLib, localBin} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			printWarning(fmt.Sprintf("failed to create %s: %v", dir, err))
			return false
		}
	}

	osName, arch := databricksCLIPlatform()
	bare := strings.TrimPrefix(version, "v")
	filename := fmt.Sprintf("databricks_cli_%s_%s_%s.tar.gz", bare, osName, arch)
	binaryName := "databricks"
	if osName == "windows" {
		filename = fmt.Sprintf("databricks_cli_%s_windows_%s.zip", bare, arch)
		binaryName = "databricks.exe"
	}

	url := fmt.Sprintf("https://github.com/databricks/cli/releases/download/%s/%s", version, filename)
	archivePath := filepath.Join(localLib, filename)
	if err := downloadFile(url, archivePath); err != nil {
		printWarning(fmt.Sprintf("failed to install Databricks CLI: %v", err))
		return false
	}

	fmt.Printf("Extracting %s...\n", filename)
	scratch := filepath.Join(localLib, "databricks-cli-"+version)
	var extractErr error
	if osName == "windows" {
		extractErr = extractZip(archivePath, scratch)
	} else {
		extractErr = extractTarGz(archivePath, scratch)
	}
	if extractErr != nil {
		printWarning(fmt.Sprintf("failed to extract %s: %v", filename, extractErr))
		return false
	}

	// Release archives nest the binary at varying depths.
	binary := findInTree(scratch, binaryName)
	if binary == "" {
		printWarning(fmt.Sprintf("could not find %s in extracted files", binaryName))
		return false
	}

	target := filepath.Join(localBin, binaryName)
	if err := copyFile(binary, target); err != nil {
		printWarning(fmt.Sprintf("failed to install %s: %v", target, err))
		return false
	}
	if runtime.GOOS != "windows" {
		if err := markExecutable(target); err != nil {
			printWarning(fmt.Sprintf("failed to mark %s executable: %v", target, err))
			return false
		}
	}

	os.Remove(archivePath)
	os.RemoveAll(scratch)

	env.PrependPath(localBin)

	printSuccess(fmt.Sprintf("Databricks CLI %s installed successfully", version))
	fmt.Printf("Binary location: %s\n", pathStyle.Render(target))
	fmt.Printf("Added to PATH: %s\n", pathStyle.Render(localBin))
	return true
}

// downloadServerBinary fetches the devbox server binary as a raw
// release asset. Best-effort: the caller falls back to local binaries.
func downloadServerBinary(version, binaryName, target string) bool {
	url := fmt.Sprintf("%s/releases/download/%s/%s", devboxRepoURL, version, binaryName)
	if err := downloadFile(url, target); err != nil {
		printWarning(fmt.Sprintf("failed to download binary: %v", err))
		return false
	}
	if err := markExecutable(target); err != nil {
		printWarning(fmt.Sprintf("failed to mark %s executable: %v", target, err))
		return false
	}
	fmt.Printf("Downloaded and made executable: %s\n", pathStyle.Render(target))
	return true
}
