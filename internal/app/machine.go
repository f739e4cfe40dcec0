// Package app reconciles the tray icons with the user's settings, the
// playback state and the desktop theme. All work happens on one goroutine.
package app

import (
	"log"
	"time"

	"github.com/clickplay/clickplay/internal/config"
	"github.com/clickplay/clickplay/internal/glyph"
	"github.com/clickplay/clickplay/internal/media"
	"github.com/clickplay/clickplay/internal/slots"
	"github.com/clickplay/clickplay/internal/theme"
)

// TickInterval is the playback polling cadence.
const TickInterval = 500 * time.Millisecond

// themeCheckEvery is the number of ticks between theme queries.
const themeCheckEvery = 4

// PlaybackSource reports whether media is playing. Failures report false.
type PlaybackSource interface {
	PlaybackActive() bool
}

// Transport forwards a transport command to the player.
type Transport interface {
	Send(c media.Command) error
}

// SettingsStore persists the user's settings.
type SettingsStore interface {
	Load() (config.Settings, error)
	Save(s config.Settings) error
}

// Config wires a Machine to its collaborators.
type Config struct {
	Publisher slots.Publisher
	Playback  PlaybackSource
	Theme     theme.Source
	Transport Transport
	Store     SettingsStore

	// OpenMenu is called when the Default icon is clicked.
	OpenMenu func()
	// StateChanged is called after user- or file-driven changes to the
	// visibility flags.
	StateChanged func(State)

	Verbose bool
}

// State is the process-wide tray state.
type State struct {
	Visibility        slots.Visibility
	DarkForeground    bool
	IsPlaying         bool
	LastThemeDark     bool
	ThemeCheckCounter int
}

// Settings returns the persisted part of s.
func (s State) Settings() config.Settings {
	return config.Settings{
		ShowPrevious:  s.Visibility.Previous,
		ShowPlayPause: s.Visibility.PlayPause,
		ShowNext:      s.Visibility.Next,
		DarkIcons:     s.DarkForeground,
	}
}

// Machine owns the State and the slot registry. Its methods must be called
// from a single goroutine; Run provides one.
type Machine struct {
	cfg      Config
	state    State
	registry *slots.Registry
}

// New returns a machine that has not yet published anything.
func New(cfg Config) *Machine {
	reg := slots.NewRegistry(cfg.Publisher)
	reg.Verbose = cfg.Verbose
	return &Machine{cfg: cfg, registry: reg}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Published returns the ids of the published slots.
func (m *Machine) Published() []slots.ID {
	return m.registry.Published()
}

// Start loads the settings, derives the palette from the current theme,
// reads the playback state and publishes the initial icons.
func (m *Machine) Start() {
	s, err := m.cfg.Store.Load()
	if err != nil {
		log.Printf("Using default settings: %v", err)
		s = config.Settings{}
	}
	m.state.Visibility = slots.Visibility{
		Previous:  s.ShowPrevious,
		PlayPause: s.ShowPlayPause,
		Next:      s.ShowNext,
	}

	// The stored dark_icons value is superseded by the live theme.
	light := m.cfg.Theme.UsesLightTheme()
	m.state.LastThemeDark = !light
	m.state.DarkForeground = light

	m.state.IsPlaying = m.cfg.Playback.PlaybackActive()
	m.state.ThemeCheckCounter = 0

	log.Printf("Starting with %+v (light theme: %v, playing: %v)", m.state.Visibility, light, m.state.IsPlaying)
	m.reconcile()
	m.notify()
}

// Tick polls playback every call and the theme every fourth call.
func (m *Machine) Tick() {
	playing := m.cfg.Playback.PlaybackActive()
	if playing != m.state.IsPlaying {
		m.state.IsPlaying = playing
		if m.state.Visibility.PlayPause {
			m.refreshPlayPause()
		}
	}

	m.state.ThemeCheckCounter++
	if m.state.ThemeCheckCounter < themeCheckEvery {
		return
	}
	m.state.ThemeCheckCounter = 0

	systemDark := !m.cfg.Theme.UsesLightTheme()
	if systemDark == m.state.LastThemeDark {
		return
	}
	log.Printf("System theme changed (dark: %v)", systemDark)
	m.state.LastThemeDark = systemDark
	m.state.DarkForeground = !systemDark
	m.reconcile()
	m.save()
}

// Toggle flips the visibility of a transport control.
func (m *Machine) Toggle(id slots.ID) {
	v := &m.state.Visibility
	switch id {
	case slots.Previous:
		v.Previous = !v.Previous
	case slots.PlayPause:
		v.PlayPause = !v.PlayPause
	case slots.Next:
		v.Next = !v.Next
	default:
		return
	}
	m.reconcile()
	m.save()
	m.notify()
}

// Click handles a click on a published icon. A play/pause click flips
// IsPlaying immediately; the next tick corrects it if the player ignored
// the key.
func (m *Machine) Click(id slots.ID) {
	switch id {
	case slots.Default:
		if m.cfg.OpenMenu != nil {
			m.cfg.OpenMenu()
		}
	case slots.Previous:
		m.send(media.Previous)
	case slots.Next:
		m.send(media.Next)
	case slots.PlayPause:
		m.send(media.PlayPause)
		m.state.IsPlaying = !m.state.IsPlaying
		m.refreshPlayPause()
	}
}

// ReloadSettings re-reads the visibility flags after the settings file
// changed on disk. Unreadable files are ignored.
func (m *Machine) ReloadSettings() {
	s, err := m.cfg.Store.Load()
	if err != nil {
		log.Printf("Ignoring settings change: %v", err)
		return
	}
	v := slots.Visibility{Previous: s.ShowPrevious, PlayPause: s.ShowPlayPause, Next: s.ShowNext}
	if v == m.state.Visibility {
		return
	}
	log.Printf("Settings file changed: %+v", v)
	m.state.Visibility = v
	m.reconcile()
	m.notify()
}

// Shutdown withdraws every icon.
func (m *Machine) Shutdown() {
	m.registry.WithdrawAll()
}

func (m *Machine) reconcile() {
	desired := slots.Desired(m.state.Visibility, m.state.IsPlaying)
	m.registry.Reconcile(desired, glyph.Palette{DarkForeground: m.state.DarkForeground})
}

func (m *Machine) refreshPlayPause() {
	m.registry.Refresh(slots.PlayPauseSlot(m.state.IsPlaying), glyph.Palette{DarkForeground: m.state.DarkForeground})
}

func (m *Machine) save() {
	if err := m.cfg.Store.Save(m.state.Settings()); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

func (m *Machine) send(c media.Command) {
	if err := m.cfg.Transport.Send(c); err != nil {
		log.Printf("Failed to send %s: %v", c, err)
	}
}

func (m *Machine) notify() {
	if m.cfg.StateChanged != nil {
		m.cfg.StateChanged(m.state)
	}
}
