package main

import (
	"fmt"
	"path/filepath"
)

const venvBinDir = appRootDir + "/.venv/bin"

// launchServer finalizes the environment snapshot and hands the
// process over to the server binary.
func launchServer(root, binaryPath, port string, env *launchEnv) int {
	env.Set("DEVBOX_SERVER_PORT", port)
	env.AppendPath(venvBinDir)

	configPath := filepath.Join(root, "devbox.yaml")
	if pathExists(configPath) {
		env.Set("DEVBOX_CONFIG_PATH", configPath)
		fmt.Printf("Using config file: %s\n", configPath)
	} else {
		printWarning(fmt.Sprintf("config file not found at %s, server will use defaults", configPath))
	}

	// The deployment platform's PORT must not leak into the server,
	// which reads its own port variable.
	env.Unset("PORT")

	if !pathExists(binaryPath) {
		printError(fmt.Sprintf("server binary not found at %s", binaryPath))
		fmt.Println("Make sure to build the Go server first:")
		fmt.Println("  make build-go")
		return 1
	}

	fmt.Println("\nNow starting the actual Go server...")
	code, err := execHandoff(binaryPath, []string{binaryPath}, env.Environ())
	if err != nil {
		printError(fmt.Sprintf("starting server: %v", err))
		return 1
	}
	return code
}
