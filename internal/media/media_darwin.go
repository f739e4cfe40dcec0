//go:build darwin

package media

import (
	"os/exec"
	"strings"

	"github.com/clickplay/clickplay/internal/keyboard"
)

const stateScript = `if application "Music" is running then tell application "Music" to get player state as string`

// Session reads and drives the Music app through AppleScript.
type Session struct{}

// NewSession returns a Music app session.
func NewSession() *Session {
	return &Session{}
}

// PlaybackActive reports whether Music is playing.
func (s *Session) PlaybackActive() bool {
	out, err := exec.Command("osascript", "-e", stateScript).Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "playing"
}

// Send forwards c to Music.
func (s *Session) Send(c Command) error {
	return keyboard.SendMediaKey(c.key())
}
