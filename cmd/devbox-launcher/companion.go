package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// appRootDir is where a managed deployment keeps the app source tree
// and the companion tooling's config bundle.
const appRootDir = "/app/python/source_code"

var npmGlobalPackages = []string{
	"@anthropic-ai/claude-code",
	"@musistudio/claude-code-router",
	"@openai/codex",
	"@google/gemini-cli",
}

var shellAliases = []string{
	`alias cc="ccr code"`,
	`alias codex='mkdir -p $CODEX_HOME && \codex'`,
}

// setupCompanionTooling provisions the AI coding toolchain in managed
// deployments: npm prefix, workspace token, credentials file, router
// config + transformer plugin, global npm packages, proxy restart, and
// shell aliases. Any failure aborts the whole setup.
func setupCompanionTooling(env *launchEnv) error {
	fmt.Println("Setting up npm global user dir")
	home := env.Get("HOME")
	if home == "" {
		home = userHome()
	}
	npmGlobal := filepath.Join(home, ".npm-global")
	if err := os.MkdirAll(filepath.Join(npmGlobal, "bin"), 0o755); err != nil {
		return fmt.Errorf("create npm prefix: %w", err)
	}
	env.Set("NPM_CONFIG_PREFIX", npmGlobal)
	env.PrependPath(filepath.Join(npmGlobal, "bin"))
	fmt.Println("Finished setting up npm global user dir")

	host, err := requireEnv("DATABRICKS_HOST")
	if err != nil {
		return err
	}
	clientID, err := requireEnv("DATABRICKS_CLIENT_ID")
	if err != nil {
		return err
	}
	clientSecret, err := requireEnv("DATABRICKS_CLIENT_SECRET")
	if err != nil {
		return err
	}

	token, err := createWorkspaceToken(context.Background())
	if err != nil {
		return fmt.Errorf("create workspace token: %w", err)
	}

	if err := writeDatabricksCfg(appRootDir, host, clientID, clientSecret); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	if err := materializeRouterConfigs(appRootDir, host, token); err != nil {
		return fmt.Errorf("write router config: %w", err)
	}

	for _, pkg := range npmGlobalPackages {
		if err := runCommand(env, "npm", "install", "-g", pkg); err != nil {
			return err
		}
	}
	if err := runCommand(env, "ccr", "restart"); err != nil {
		return err
	}

	return ensureShellAliases(filepath.Join(home, ".bashrc"))
}

func requireEnv(name string) (string, error) {
	if val := os.Getenv(name); val != "" {
		return val, nil
	}
	return "", fmt.Errorf("required environment variable %s is not set", name)
}

// writeDatabricksCfg regenerates the ini-style credentials file used
// by the databricks CLI and SDK. Overwritten unconditionally.
func writeDatabricksCfg(rootDir, host, clientID, clientSecret string) error {
	content := fmt.Sprintf(`
[DEFAULT]
host = %s
client_id = %s
client_secret = %s
`, ensureHTTPSURL(host), clientID, clientSecret)
	return os.WriteFile(filepath.Join(rootDir, ".databrickscfg"), []byte(content), 0o600)
}

func ensureHTTPSURL(url string) string {
	if strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + strings.TrimPrefix(url, "http://")
}

// runCommand runs a checked subprocess with the launch environment
// snapshot, resolving the binary against the snapshot's PATH so tools
// installed earlier in the bootstrap are found.
func runCommand(env *launchEnv, name string, args ...string) error {
	cmd := exec.Command(lookPathIn(env, name), args...)
	cmd.Env = env.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func lookPathIn(env *launchEnv, name string) string {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	for _, dir := range strings.Split(env.Get("PATH"), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return name
}

// ensureShellAliases appends the companion aliases to the shell rc
// file, each only when no existing line matches it exactly.
func ensureShellAliases(rcPath string) error {
	data, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	existing := map[string]bool{}
	for _, line := range strings.Split(string(data), "\n") {
		existing[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, alias := range shellAliases {
		if !existing[alias] {
			missing = append(missing, alias)
		}
	}
	if len(missing) == 0 {
		fmt.Printf("Aliases already present in %s\n", rcPath)
		return nil
	}

	f, err := os.OpenFile(rcPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString("\n" + strings.Join(missing, "\n") + "\n"); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Added aliases to %s\n", rcPath)
	fmt.Println("Run `source ~/.bashrc` or restart your shell to activate aliases.")
	return nil
}
