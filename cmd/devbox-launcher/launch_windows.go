//go:build windows

package main

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
)

// Windows has no exec-style process replacement. Spawn the server with
// the finalized environment, forward interrupts, and exit with its
// code so callers cannot tell the difference.
func execHandoff(binary string, argv, envv []string) (int, error) {
	cmd := exec.Command(binary, argv[1:]...)
	cmd.Env = envv
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return 1, err
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		for sig := range sigc {
			_ = cmd.Process.Signal(sig)
		}
	}()

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}
