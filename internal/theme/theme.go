// Package theme reports whether the desktop uses a light appearance.
package theme

import "log"

// Source answers the appearance query.
type Source interface {
	UsesLightTheme() bool
}

// System queries the operating system. Read failures are treated as a dark
// theme and logged once until the next successful read.
type System struct {
	failed bool
}

// UsesLightTheme implements Source.
func (s *System) UsesLightTheme() bool {
	light, err := systemUsesLightTheme()
	if err != nil {
		if !s.failed {
			log.Printf("Failed to read system theme, assuming dark: %v", err)
			s.failed = true
		}
		return false
	}
	s.failed = false
	return light
}

// Fixed always reports the same appearance.
type Fixed bool

// UsesLightTheme implements Source.
func (f Fixed) UsesLightTheme() bool {
	return bool(f)
}

// New returns the source for an appearance option: "light" and "dark" pin
// the answer, anything else follows the system.
func New(appearance string) Source {
	switch appearance {
	case "light":
		return Fixed(true)
	case "dark":
		return Fixed(false)
	default:
		return &System{}
	}
}
