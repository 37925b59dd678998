package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultAPIURL is the backend base URL used when nothing else is set.
	DefaultAPIURL = "http://localhost:8080"

	// EnvAPIURL is the environment variable overriding the backend base URL.
	EnvAPIURL = "PEERLINK_API_URL"

	// DefaultFileName is the config file searched for in the working
	// directory and the user config directory.
	DefaultFileName = "peerlink.yaml"
)

// Config represents a peerlink.yaml configuration file.
// All values are optional and act as defaults for CLI flags.
// CLI flags always override config values.
type Config struct {
	// APIURL is the backend base URL.
	APIURL string `yaml:"api_url"`
	// DownloadDir is where received files are saved. Defaults to the
	// working directory.
	DownloadDir string `yaml:"download_dir"`
	// CopyOnSend copies the issued identifier to the clipboard after a
	// one-shot send.
	CopyOnSend bool `yaml:"copy_on_send"`
	// Share configures outbound share links.
	Share ShareConfig `yaml:"share"`
}

// ShareConfig holds share-link defaults from the config file.
type ShareConfig struct {
	// Phrase is the human-readable text accompanying the identifier in
	// share links. Empty means the built-in default.
	Phrase string `yaml:"phrase"`
}

// ResolveAPIURL applies the precedence flag > environment > config file >
// default and returns the backend base URL to use.
func (c *Config) ResolveAPIURL(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.APIURL); v != "" {
		return v
	}
	return DefaultAPIURL
}

// ResolveDownloadDir applies flag > config file > working directory.
func (c *Config) ResolveDownloadDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.DownloadDir != "" {
		return c.DownloadDir
	}
	return "."
}

// DefaultPaths returns the config file locations searched by LoadDefault,
// in order: ./peerlink.yaml, then peerlink/peerlink.yaml under the user
// config directory.
func DefaultPaths() []string {
	paths := []string{DefaultFileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "peerlink", DefaultFileName))
	}
	return paths
}
