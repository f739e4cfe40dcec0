//go:build linux

package theme

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	portalName      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalReadOne   = "org.freedesktop.portal.Settings.ReadOne"
	portalRead      = "org.freedesktop.portal.Settings.Read"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	colorSchemeDark = 1
)

// systemUsesLightTheme reads the XDG desktop portal colour scheme:
// 0 no preference, 1 prefer dark, 2 prefer light. Only an explicit dark
// preference counts as dark.
func systemUsesLightTheme() (bool, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false, fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object(portalName, portalPath)
	var v dbus.Variant
	if err := obj.Call(portalReadOne, 0, appearanceNS, colorSchemeKey).Store(&v); err != nil {
		// Portals older than version 2 only have Read, which wraps the
		// value in an extra variant.
		if err := obj.Call(portalRead, 0, appearanceNS, colorSchemeKey).Store(&v); err != nil {
			return false, fmt.Errorf("read color-scheme: %w", err)
		}
	}

	return lightFromScheme(v)
}

// lightFromScheme maps a portal color-scheme reply to the light flag.
func lightFromScheme(v dbus.Variant) (bool, error) {
	scheme, ok := unwrap(v).(uint32)
	if !ok {
		return false, fmt.Errorf("unexpected color-scheme value %v", v)
	}
	return scheme != colorSchemeDark, nil
}

func unwrap(v dbus.Variant) interface{} {
	val := v.Value()
	for {
		inner, ok := val.(dbus.Variant)
		if !ok {
			return val
		}
		val = inner.Value()
	}
}
