//go:build !windows

package tray

import (
	"errors"
	"strings"

	"github.com/clickplay/clickplay/internal/canvas"
	"github.com/clickplay/clickplay/internal/icons"
	"github.com/clickplay/clickplay/internal/slots"
)

const tooltipSep = " · "

var errNoSlots = errors.New("no slots published")

type slotIcon struct {
	icon    *canvas.Buffer
	tooltip string
}

// iconSet is the published slots drawn side by side in one tray icon.
type iconSet struct {
	slots map[slots.ID]slotIcon
}

func newIconSet() *iconSet {
	return &iconSet{slots: make(map[slots.ID]slotIcon)}
}

func (s *iconSet) put(id slots.ID, icon *canvas.Buffer, tooltip string) {
	s.slots[id] = slotIcon{icon: icon, tooltip: tooltip}
}

func (s *iconSet) remove(id slots.ID) {
	delete(s.slots, id)
}

func (s *iconSet) empty() bool {
	return len(s.slots) == 0
}

func (s *iconSet) tooltipOf(id slots.ID) (string, bool) {
	e, ok := s.slots[id]
	return e.tooltip, ok
}

func (s *iconSet) ordered() []slotIcon {
	var out []slotIcon
	for _, id := range slots.Order {
		if e, ok := s.slots[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// tooltip joins the slot tooltips in slot order.
func (s *iconSet) tooltip() string {
	var tips []string
	for _, e := range s.ordered() {
		tips = append(tips, e.tooltip)
	}
	return strings.Join(tips, tooltipSep)
}

// encode composes the slots into one PNG strip. The second image is the
// black template variant for the macOS menu bar.
func (s *iconSet) encode() (regular, template []byte, err error) {
	var bufs []*canvas.Buffer
	for _, e := range s.ordered() {
		bufs = append(bufs, e.icon)
	}
	if len(bufs) == 0 {
		return nil, nil, errNoSlots
	}

	img := icons.Compose(bufs)
	if regular, err = icons.Encode(img, icons.PNG); err != nil {
		return nil, nil, err
	}
	if template, err = icons.Encode(icons.Template(img), icons.PNG); err != nil {
		return nil, nil, err
	}
	return regular, template, nil
}
