// Package config locates, reads and writes ClickPlay's on-disk state: the
// persisted control settings (clickplay.cfg) and the process options
// (config.yaml).
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SettingsEnv overrides the settings file location.
const SettingsEnv = "CLICKPLAY_SETTINGS"

// Settings is the persisted part of the tray state. The zero value is the
// default: no controls shown, white icons.
type Settings struct {
	ShowPrevious  bool
	ShowPlayPause bool
	ShowNext      bool
	DarkIcons     bool
}

// SettingsPath returns the settings file path.
func SettingsPath() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	return filepath.Join(Dir(), "clickplay.cfg")
}

// ParseSettings reads "name=0|1" lines. Unknown names and malformed lines
// are ignored; missing names keep their default.
func ParseSettings(r io.Reader) (Settings, error) {
	var s Settings
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), "=")
		if len(parts) != 2 {
			continue
		}
		value := strings.TrimSpace(parts[1]) == "1"
		switch strings.TrimSpace(parts[0]) {
		case "prev":
			s.ShowPrevious = value
		case "play":
			s.ShowPlayPause = value
		case "next":
			s.ShowNext = value
		case "dark_icons":
			s.DarkIcons = value
		}
	}
	if err := scanner.Err(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return s, nil
}

// String formats s in the settings file layout.
func (s Settings) String() string {
	return fmt.Sprintf("prev=%d\nplay=%d\nnext=%d\ndark_icons=%d",
		bit(s.ShowPrevious), bit(s.ShowPlayPause), bit(s.ShowNext), bit(s.DarkIcons))
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SettingsStore reads and writes one settings file.
type SettingsStore struct {
	Path string
}

// Load returns the stored settings. On any error it returns the defaults
// together with the error, which callers may log.
func (st SettingsStore) Load() (Settings, error) {
	f, err := os.Open(st.Path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings %s: %w", st.Path, err)
	}
	defer f.Close()
	return ParseSettings(f)
}

// Save writes s, creating the parent directory if needed.
func (st SettingsStore) Save(s Settings) error {
	dir := filepath.Dir(st.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(st.Path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", st.Path, err)
	}
	return nil
}
