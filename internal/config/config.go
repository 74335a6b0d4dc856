// Package config handles tabchat configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/tabchat/internal/tabs"
)

// Config represents tabchat configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Tabs    TabsConfig    `toml:"tabs"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Title shown at the right of the tab bar
	Title string `toml:"title"`
}

// TabsConfig contains tab settings.
type TabsConfig struct {
	// Tab titles by rank; missing entries use "Tab N"
	Titles []string `toml:"titles"`
}

// HistoryConfig contains transcript settings.
type HistoryConfig struct {
	// Transcript file; empty disables recording. "~/" is expanded.
	File string `toml:"file"`

	// Seed the message log from the transcript at startup
	Restore bool `toml:"restore"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Prefix message log lines with their index
	NumberMessages bool `toml:"number_messages"`

	// Scroll the message log with the mouse wheel
	Mouse bool `toml:"mouse"`
}

// KeysConfig contains Normal-mode keybindings.
type KeysConfig struct {
	Edit    string `toml:"edit"`
	NextTab string `toml:"next_tab"`
	PrevTab string `toml:"prev_tab"`
	Quit    string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Title: "Tabchat",
		},
		Tabs: TabsConfig{
			Titles: []string{},
		},
		History: HistoryConfig{
			File:    "",
			Restore: false,
		},
		UI: UIConfig{
			NumberMessages: true,
			Mouse:          true,
		},
		Keys: KeysConfig{
			Edit:    "e",
			NextTab: "l,right",
			PrevTab: "h,left",
			Quit:    "q,esc",
		},
	}
}

// TabTitle returns the configured title for t, falling back to its default.
func (c *Config) TabTitle(t tabs.Tab) string {
	rank := t.Rank()
	if rank >= 0 && rank < len(c.Tabs.Titles) {
		if title := strings.TrimSpace(c.Tabs.Titles[rank]); title != "" {
			return title
		}
	}
	return t.String()
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/tabchat/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tabchat", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "tabchat", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "tabchat", "config.toml")
	}
	return filepath.Join(configDir, "tabchat", "config.toml")
}

// DebugLogPath returns the default debug log location.
func DebugLogPath() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "tabchat", "debug.log")
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "tabchat", "debug.log")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file,
	// so unspecified fields keep their defaults.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// CreateDefaultConfigFile writes a commented default config to path.
// An existing file is left untouched.
func CreateDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Tabchat Configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# Title shown at the right of the tab bar\n")
	fmt.Fprintf(&b, "title = %q\n\n", cfg.General.Title)

	b.WriteString("[tabs]\n")
	fmt.Fprintf(&b, "# Up to %d titles, by position. Missing entries use \"Tab N\".\n", tabs.Count)
	b.WriteString("# titles = [\"Chat\", \"Peers\", \"Files\", \"About\"]\n\n")

	b.WriteString("[history]\n")
	b.WriteString("# Append every posted line to this file (empty disables)\n")
	b.WriteString("# file = \"~/.local/share/tabchat/history.txt\"\n")
	b.WriteString("# Load the file into the message log at startup\n")
	fmt.Fprintf(&b, "restore = %v\n\n", cfg.History.Restore)

	b.WriteString("[ui]\n")
	b.WriteString("# Prefix messages with their index\n")
	fmt.Fprintf(&b, "number_messages = %v\n", cfg.UI.NumberMessages)
	b.WriteString("# Scroll the message log with the mouse wheel\n")
	fmt.Fprintf(&b, "mouse = %v\n\n", cfg.UI.Mouse)

	b.WriteString("[keys]\n")
	b.WriteString("# Normal-mode keybindings (comma-separated for multiple keys)\n")
	b.WriteString("# Editing-mode keys are fixed: enter posts, esc leaves, ←/→ move the cursor.\n")
	fmt.Fprintf(&b, "# edit = %q\n", cfg.Keys.Edit)
	fmt.Fprintf(&b, "# next_tab = %q\n", cfg.Keys.NextTab)
	fmt.Fprintf(&b, "# prev_tab = %q\n", cfg.Keys.PrevTab)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if len(c.Tabs.Titles) > tabs.Count {
		warnings = append(warnings, fmt.Sprintf("tabs.titles has %d entries, only the first %d are used", len(c.Tabs.Titles), tabs.Count))
	}

	if c.History.Restore && strings.TrimSpace(c.History.File) == "" {
		warnings = append(warnings, "history.restore is set but history.file is empty")
	}

	bindings := []struct {
		name  string
		value string
	}{
		{"keys.edit", c.Keys.Edit},
		{"keys.next_tab", c.Keys.NextTab},
		{"keys.prev_tab", c.Keys.PrevTab},
		{"keys.quit", c.Keys.Quit},
	}

	owner := make(map[string]string)
	for _, binding := range bindings {
		keys := ParseKeys(binding.value)
		if binding.value != "" && len(keys) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s has no keys", binding.name))
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != binding.name {
				warnings = append(warnings, fmt.Sprintf("key %q is bound to both %s and %s", k, prev, binding.name))
			}
			owner[k] = binding.name

			if warning := checkKeyName(k); warning != "" {
				warnings = append(warnings, fmt.Sprintf("%s: %s", binding.name, warning))
			}
		}
	}

	return warnings
}

// ParseKeys parses a comma-separated list of keys.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
