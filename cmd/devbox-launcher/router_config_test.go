package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRouterConfigProviderEntry(t *testing.T) {
	cfg := routerConfig("example.com", "tok-123", "/plugins/t.js")

	providers, ok := cfg["Providers"].([]any)
	if !ok || len(providers) != 1 {
		t.Fatalf("expected one provider, got %#v", cfg["Providers"])
	}
	provider := providers[0].(map[string]any)

	wantBase := "https://example.com/serving-endpoints/databricks-claude-sonnet-4/invocations"
	if got := provider["api_base_url"]; got != wantBase {
		t.Errorf("api_base_url: expected %q, got %q", wantBase, got)
	}
	if got := provider["api_key"]; got != "tok-123" {
		t.Errorf("api_key: expected tok-123, got %q", got)
	}
	if got := provider["name"]; got != "databricks" {
		t.Errorf("provider name: expected databricks, got %q", got)
	}
}

func TestRouterConfigRouterDefault(t *testing.T) {
	cfg := routerConfig("example.com", "tok", "/plugins/t.js")
	router := cfg["Router"].(map[string]any)
	if got := router["default"]; got != "databricks,databricks-claude-sonnet-4" {
		t.Errorf("unexpected router default: %q", got)
	}
}

func TestMaterializeRouterConfigs(t *testing.T) {
	dir := t.TempDir()
	if err := materializeRouterConfigs(dir, "example.com", "tok-123"); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, ".claude-code-router", "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config.json is not valid JSON: %v", err)
	}
	if got := cfg["PORT"]; got != float64(3456) {
		t.Errorf("expected PORT 3456, got %v", got)
	}

	pluginPath := filepath.Join(dir, ".claude-code-router", "plugins", "databricks-claude-transformers.js")
	plugin, err := os.ReadFile(pluginPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(plugin) != databricksTransformerJS {
		t.Error("plugin file differs from payload")
	}

	transformers := cfg["transformers"].([]any)
	entry := transformers[0].(map[string]any)
	if got := entry["path"]; got != pluginPath {
		t.Errorf("transformer path: expected %q, got %q", pluginPath, got)
	}
}

func TestMaterializeRouterConfigsOverwrites(t *testing.T) {
	dir := t.TempDir()
	if err := materializeRouterConfigs(dir, "example.com", "old-token"); err != nil {
		t.Fatal(err)
	}
	if err := materializeRouterConfigs(dir, "example.com", "new-token"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".claude-code-router", "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("old-token")) {
		t.Error("stale token survived regeneration")
	}
	if !bytes.Contains(data, []byte("new-token")) {
		t.Error("new token missing after regeneration")
	}
}

func TestTransformerPayloadStable(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	if err := materializeRouterConfigs(dirA, "a.example.com", "tok-a"); err != nil {
		t.Fatal(err)
	}
	if err := materializeRouterConfigs(dirB, "b.example.com", "tok-b"); err != nil {
		t.Fatal(err)
	}

	rel := filepath.Join(".claude-code-router", "plugins", "databricks-claude-transformers.js")
	a, err := os.ReadFile(filepath.Join(dirA, rel))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dirB, rel))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("transformer payload is not byte-identical across generations")
	}
}
