package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// downloadFile streams url into dest, creating parent directories as
// needed. There is deliberately no timeout on the request: downloads of
// large archives on slow links must not be cut off. When stdout is a
// terminal and the server reports a length, a progress bar is shown.
func downloadFile(url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	fmt.Printf("Downloading from %s...\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if isTerminal(os.Stdout) && resp.ContentLength > 0 {
		if err := copyWithProgress(out, resp.Body, int(resp.ContentLength)); err != nil {
			return err
		}
	} else {
		if _, err := io.Copy(out, resp.Body); err != nil {
			return err
		}
	}
	return out.Close()
}

func markExecutable(path string) error {
	return os.Chmod(path, 0o755)
}
