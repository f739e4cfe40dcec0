// Package media queries the desktop's playback state and forwards
// transport commands to the active player.
package media

import (
	"github.com/clickplay/clickplay/internal/keyboard"
)

// Command is a transport action.
type Command int

const (
	Previous Command = iota
	PlayPause
	Next
)

func (c Command) String() string {
	return c.key().String()
}

func (c Command) key() keyboard.MediaKey {
	switch c {
	case Previous:
		return keyboard.MediaPrevious
	case Next:
		return keyboard.MediaNext
	default:
		return keyboard.MediaPlayPause
	}
}

// player is one media session as reported by the OS.
type player struct {
	name   string
	status string
}

const statusPlaying = "Playing"

// anyPlaying reports whether at least one player is playing.
func anyPlaying(players []player) bool {
	for _, p := range players {
		if p.status == statusPlaying {
			return true
		}
	}
	return false
}

// target picks the player a command should go to: the first one playing,
// otherwise the first one listed.
func target(players []player) (string, bool) {
	if len(players) == 0 {
		return "", false
	}
	for _, p := range players {
		if p.status == statusPlaying {
			return p.name, true
		}
	}
	return players[0].name, true
}
