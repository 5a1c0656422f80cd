package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printHelp()
		os.Exit(0)
	}
	os.Exit(run())
}

func run() int {
	env := newLaunchEnv()

	// Optional conveniences: a failed install degrades companion
	// functionality but never stops the launch.
	installCodeServer(env, getenv("CODE_SERVER_VERSION", defaultCodeServerVersion))
	installDatabricksCLI(env, defaultDatabricksCLIVersion)

	deployment := os.Getenv("DATABRICKS_APP_DEPLOYMENT") == "true"

	root, err := os.Getwd()
	if err != nil {
		printError(fmt.Sprintf("Cannot determine working directory: %v", err))
		return 1
	}

	binaryPath, err := findServerBinary(root, deployment)
	if err != nil {
		printError(err.Error())
		return 1
	}

	port := resolvePort(root)
	fmt.Printf("Starting Databricks Devbox Manager Server (Go version) from: %s\n", binaryPath)
	fmt.Printf("Server will run on port %s\n", port)
	fmt.Println("Press Ctrl+C to stop the server")

	if deployment {
		if err := setupCompanionTooling(env); err != nil {
			printError(fmt.Sprintf("Companion tooling setup failed: %v", err))
			return 1
		}
	}

	return launchServer(root, binaryPath, port, env)
}

func printHelp() {
	fmt.Print(`devbox-launcher

Bootstraps a Databricks devbox environment and hands control to the
databricks-devbox server binary.

Usage:
  devbox-launcher [-h|--help]

Environment Variables:
  LHA_SERVER_VERSION      Version to download from GitHub releases (e.g. '0.1.0').
                          If not set, the latest release tag is used.
  DEVBOX_SERVER_PORT      Port to run the server on (default: 8000)
  PORT                    Deployment-assigned port, used when DEVBOX_SERVER_PORT is unset
  CODE_SERVER_VERSION     Version of code-server to install (default: ` + defaultCodeServerVersion + `)
  DATABRICKS_APP_DEPLOYMENT
                          'true' enables remote binary fetch and companion tooling setup
  CLAUDE_CODE_TOKEN_EXPIRY_SECONDS
                          Lifetime of the generated workspace token (default: 3600)
  DATABRICKS_HOST         Workspace host (companion tooling setup)
  DATABRICKS_CLIENT_ID    Service principal client id (companion tooling setup)
  DATABRICKS_CLIENT_SECRET
                          Service principal client secret (companion tooling setup)
`)
}
