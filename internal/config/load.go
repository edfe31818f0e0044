package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working and config directories.
const FileName = "lot.yaml"

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside the viewer.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip range %g..%g is invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %g must be in (0, 180)", c.Camera.FOV)
	}
	names := make(map[string]bool)
	for _, b := range c.Lot.Boxes {
		if err := checkName(names, b.Name); err != nil {
			return err
		}
	}
	for _, p := range c.Lot.Planes {
		if err := checkName(names, p.Name); err != nil {
			return err
		}
	}
	return nil
}

func checkName(seen map[string]bool, name string) error {
	if name == "" {
		return fmt.Errorf("lot part without a name")
	}
	// Names become export file names.
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("lot part %q must not contain a path separator or ..", name)
	}
	if seen[name] {
		return fmt.Errorf("duplicate lot part %q", name)
	}
	seen[name] = true
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "hlot")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "hlot")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "hlot")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "hlot")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Lists in the file replace the default lists.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
