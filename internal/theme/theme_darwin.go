//go:build darwin

package theme

import (
	"os/exec"
	"strings"
)

// systemUsesLightTheme checks AppleInterfaceStyle, which is only set (to
// "Dark") in dark mode.
func systemUsesLightTheme() (bool, error) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// The key does not exist in light mode.
			return true, nil
		}
		return false, err
	}
	return !strings.EqualFold(strings.TrimSpace(string(out)), "dark"), nil
}
