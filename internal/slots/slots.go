// Package slots tracks which tray icons are published and issues the minimal
// publish/withdraw calls to match a desired set.
package slots

import (
	"github.com/clickplay/clickplay/internal/glyph"
)

// ID names one of the four notification-area slots.
type ID int

const (
	Default ID = iota
	Previous
	PlayPause
	Next
)

// Order is the fixed publishing order.
var Order = []ID{Default, Previous, PlayPause, Next}

func (id ID) String() string {
	switch id {
	case Default:
		return "default"
	case Previous:
		return "previous"
	case PlayPause:
		return "play-pause"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// Tooltips shown for each slot.
const (
	TooltipDefault  = "ClickPlay"
	TooltipPrevious = "Previous"
	TooltipPlay     = "Play"
	TooltipPause    = "Pause"
	TooltipNext     = "Next"
)

// Slot is the desired appearance of one published icon.
type Slot struct {
	ID      ID
	Glyph   glyph.Glyph
	Tooltip string
}

// Visibility holds the user's choice of transport controls.
type Visibility struct {
	Previous  bool
	PlayPause bool
	Next      bool
}

// Any reports whether at least one control is enabled.
func (v Visibility) Any() bool {
	return v.Previous || v.PlayPause || v.Next
}

// Desired returns the slots that should be published. With no controls
// enabled only the Default slot is shown; otherwise Default is never shown.
func Desired(v Visibility, playing bool) []Slot {
	if !v.Any() {
		return []Slot{{ID: Default, Glyph: glyph.Default, Tooltip: TooltipDefault}}
	}

	var out []Slot
	if v.Previous {
		out = append(out, Slot{ID: Previous, Glyph: glyph.Previous, Tooltip: TooltipPrevious})
	}
	if v.PlayPause {
		out = append(out, PlayPauseSlot(playing))
	}
	if v.Next {
		out = append(out, Slot{ID: Next, Glyph: glyph.Next, Tooltip: TooltipNext})
	}
	return out
}

// PlayPauseSlot shows Pause while media is playing and Play otherwise.
func PlayPauseSlot(playing bool) Slot {
	if playing {
		return Slot{ID: PlayPause, Glyph: glyph.Pause, Tooltip: TooltipPause}
	}
	return Slot{ID: PlayPause, Glyph: glyph.Play, Tooltip: TooltipPlay}
}
