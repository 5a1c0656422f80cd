package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	routerDirName    = ".claude-code-router"
	routerPluginName = "databricks-claude-transformers.js"
	servingEndpoint  = "databricks-claude-sonnet-4"
	routerProvider   = "databricks"
)

// routerConfig builds the claude-code-router configuration: a local
// proxy on 127.0.0.1:3456 with one provider pointing at the workspace
// model-serving endpoint, authenticated with the freshly minted token.
func routerConfig(host, token, transformerPath string) map[string]any {
	apiBase := ensureHTTPSURL(host) + "/serving-endpoints/" + servingEndpoint + "/invocations"
	transformerUse := []any{"OpenAI", "databricks-custom"}

	return map[string]any{
		"LOG":            false,
		"LOG_LEVEL":      "debug",
		"CLAUDE_PATH":    "",
		"HOST":           "127.0.0.1",
		"PORT":           3456,
		"APIKEY":         "",
		"API_TIMEOUT_MS": "600000",
		"PROXY_URL":      "",
		"transformers": []any{
			map[string]any{
				"path":    transformerPath,
				"options": map[string]any{"debug": false},
			},
		},
		"Providers": []any{
			map[string]any{
				"name":         routerProvider,
				"api_base_url": apiBase,
				"api_key":      token,
				"models":       []any{servingEndpoint},
				"transformer": map[string]any{
					"use":           transformerUse,
					servingEndpoint: map[string]any{"use": transformerUse},
				},
			},
		},
		"StatusLine": map[string]any{
			"enabled":      false,
			"currentStyle": "default",
			"default":      map[string]any{"modules": []any{}},
			"powerline":    map[string]any{"modules": []any{}},
		},
		"Router": map[string]any{
			"default": routerProvider + "," + servingEndpoint,
		},
	}
}

// materializeRouterConfigs writes the router config bundle. Both files
// are regenerated on every deployment-mode run; the token embedded in
// config.json is short-lived, so stale copies must never survive.
func materializeRouterConfigs(rootDir, host, token string) error {
	routerDir := filepath.Join(rootDir, routerDirName)
	pluginsDir := filepath.Join(routerDir, "plugins")
	if err := os.MkdirAll(pluginsDir, 0o755); err != nil {
		return err
	}

	pluginPath := filepath.Join(pluginsDir, routerPluginName)
	data, err := json.MarshalIndent(routerConfig(host, token, pluginPath), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(routerDir, "config.json"), data, 0o644); err != nil {
		return err
	}

	return os.WriteFile(pluginPath, []byte(databricksTransformerJS), 0o644)
}
