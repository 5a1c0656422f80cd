package main

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultServerPort = "8000"

// devboxConfig mirrors the slice of devbox.yaml the launcher cares
// about; everything else in the file belongs to the server.
type devboxConfig struct {
	Server struct {
		DefaultPort int `yaml:"default_port"`
	} `yaml:"server"`
}

// resolvePort picks the server port: DEVBOX_SERVER_PORT wins, then the
// deployment-assigned PORT, then the default_port in devbox.yaml, then
// the built-in default.
func resolvePort(root string) string {
	if port := os.Getenv("DEVBOX_SERVER_PORT"); port != "" {
		return port
	}
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	if port := configuredPort(filepath.Join(root, "devbox.yaml")); port != "" {
		return port
	}
	return defaultServerPort
}

func configuredPort(configPath string) string {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return ""
	}
	var cfg devboxConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	if cfg.Server.DefaultPort <= 0 {
		return ""
	}
	return strconv.Itoa(cfg.Server.DefaultPort)
}
