//go:build !windows

package main

import "syscall"

// execHandoff replaces the launcher process image with the server.
// On success it never returns.
func execHandoff(binary string, argv, envv []string) (int, error) {
	if err := syscall.Exec(binary, argv, envv); err != nil {
		return 1, err
	}
	return 0, nil
}
