//go:build linux

package media

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/clickplay/clickplay/internal/keyboard"
)

const (
	mprisPrefix = "org.mpris.MediaPlayer2."
	mprisPath   = "/org/mpris/MediaPlayer2"
	mprisPlayer = "org.mpris.MediaPlayer2.Player"
)

// Session talks to MPRIS players on the session bus.
type Session struct {
	conn *dbus.Conn
}

// NewSession connects to the session bus. Without a bus every query
// reports "not playing" and commands fall back to synthetic media keys.
func NewSession() *Session {
	conn, err := dbus.SessionBus()
	if err != nil {
		log.Printf("MPRIS unavailable: %v", err)
		return &Session{}
	}
	return &Session{conn: conn}
}

// PlaybackActive reports whether any MPRIS player is playing.
func (s *Session) PlaybackActive() bool {
	players, err := s.players()
	if err != nil {
		return false
	}
	return anyPlaying(players)
}

// Send forwards c to the most relevant player.
func (s *Session) Send(c Command) error {
	players, err := s.players()
	if err == nil {
		if name, ok := target(players); ok {
			method := mprisPlayer + "." + mprisMethod(c)
			call := s.conn.Object(name, mprisPath).Call(method, 0)
			if call.Err == nil {
				return nil
			}
			log.Printf("MPRIS %s on %s failed: %v", method, name, call.Err)
		}
	}
	return keyboard.SendMediaKey(c.key())
}

func mprisMethod(c Command) string {
	switch c {
	case Previous:
		return "Previous"
	case Next:
		return "Next"
	default:
		return "PlayPause"
	}
}

func (s *Session) players() ([]player, error) {
	if s.conn == nil {
		return nil, fmt.Errorf("no session bus")
	}

	var names []string
	if err := s.conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return nil, fmt.Errorf("list bus names: %w", err)
	}
	sort.Strings(names)

	var players []player
	for _, name := range names {
		if !strings.HasPrefix(name, mprisPrefix) {
			continue
		}
		v, err := s.conn.Object(name, mprisPath).GetProperty(mprisPlayer + ".PlaybackStatus")
		if err != nil {
			continue
		}
		status, _ := v.Value().(string)
		players = append(players, player{name: name, status: status})
	}
	return players, nil
}
