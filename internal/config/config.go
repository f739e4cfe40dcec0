package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Appearance values for Options.Appearance.
const (
	AppearanceSystem = "system"
	AppearanceLight  = "light"
	AppearanceDark   = "dark"
)

// Options holds process options read from config.yaml.
type Options struct {
	Appearance string `yaml:"appearance"` // "system", "light" or "dark"
	Verbose    bool   `yaml:"verbose,omitempty"`

	// DisableSettingsWatch stops reloading clickplay.cfg when it is edited
	// by hand while the tray is running.
	DisableSettingsWatch bool `yaml:"disable_settings_watch,omitempty"`
}

// Load reads the options from disk, or creates a default file.
func Load() *Options {
	return LoadFrom(Path())
}

// LoadFrom reads options from path. A missing file is created with
// defaults; an unreadable or malformed file yields defaults.
func LoadFrom(path string) *Options {
	opts := &Options{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		opts.applyDefaults()
		if err := opts.SaveTo(path); err != nil {
			log.Printf("Error writing default config: %v", err)
		}
		return opts
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading config: %v", err)
		opts.applyDefaults()
		return opts
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		log.Printf("Error parsing config: %v", err)
	}

	opts.applyDefaults()
	return opts
}

// SaveTo writes the options to path.
func (o *Options) SaveTo(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func (o *Options) applyDefaults() {
	switch o.Appearance {
	case AppearanceLight, AppearanceDark, AppearanceSystem:
	default:
		o.Appearance = AppearanceSystem
	}
}

// Path returns the platform-specific options file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Dir returns the platform-specific config/data directory.
func Dir() string {
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "ClickPlay")
	} else if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		return filepath.Join(appData, "ClickPlay")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clickplay")
}
