//go:build !windows

package tray

import (
	"log"
	"runtime"
	"sync"

	"github.com/getlantern/systray"

	"github.com/clickplay/clickplay/internal/app"
	"github.com/clickplay/clickplay/internal/canvas"
	"github.com/clickplay/clickplay/internal/slots"
)

// Run starts the systray event loop. It blocks until Quit is called.
func Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

// Quit ends the loop started by Run.
func Quit() {
	systray.Quit()
}

// Tray is the systray-backed slot publisher and context menu. Every slot
// is drawn into one icon; the menu carries an entry per visible control.
type Tray struct {
	events chan<- app.Event

	mu   sync.Mutex
	set  *iconSet
	last string

	clicks  map[slots.ID]*systray.MenuItem
	toggles map[slots.ID]*systray.MenuItem

	setIcon    func(regular, template []byte)
	setTooltip func(string)
}

// SetupMenu builds the context menu. It must be called from the systray
// ready callback.
func SetupMenu(events chan<- app.Event, cb Callbacks) *Tray {
	t := &Tray{
		events:  events,
		set:     newIconSet(),
		clicks:  make(map[slots.ID]*systray.MenuItem),
		toggles: make(map[slots.ID]*systray.MenuItem),

		setIcon:    setSystrayIcon,
		setTooltip: systray.SetTooltip,
	}

	systray.SetTitle("")
	systray.SetTooltip(slots.TooltipDefault)

	t.clicks[slots.Previous] = systray.AddMenuItem(slots.TooltipPrevious, "Skip to the previous track")
	t.clicks[slots.PlayPause] = systray.AddMenuItem(slots.TooltipPlay, "Toggle playback")
	t.clicks[slots.Next] = systray.AddMenuItem(slots.TooltipNext, "Skip to the next track")
	for _, item := range t.clicks {
		item.Hide()
	}

	systray.AddSeparator()

	for _, id := range toggleOrder {
		t.toggles[id] = systray.AddMenuItemCheckbox(toggleLabel(id), "", false)
	}

	systray.AddSeparator()

	mSettings := systray.AddMenuItem(labelOpenSettings, "Open clickplay.cfg")
	mAbout := systray.AddMenuItem(aboutLabel(cb.Version), "About ClickPlay")

	systray.AddSeparator()

	mQuit := systray.AddMenuItem(labelExit, "Quit ClickPlay")

	go func() {
		for {
			select {
			case <-t.clicks[slots.Previous].ClickedCh:
				post(t.events, app.Click(slots.Previous))
			case <-t.clicks[slots.PlayPause].ClickedCh:
				post(t.events, app.Click(slots.PlayPause))
			case <-t.clicks[slots.Next].ClickedCh:
				post(t.events, app.Click(slots.Next))
			case <-t.toggles[slots.Previous].ClickedCh:
				post(t.events, app.Toggle(slots.Previous))
			case <-t.toggles[slots.PlayPause].ClickedCh:
				post(t.events, app.Toggle(slots.PlayPause))
			case <-t.toggles[slots.Next].ClickedCh:
				post(t.events, app.Toggle(slots.Next))
			case <-mSettings.ClickedCh:
				if cb.OnOpenSettings != nil {
					cb.OnOpenSettings()
				}
			case <-mAbout.ClickedCh:
				go showAbout(cb.Version)
			case <-mQuit.ClickedCh:
				if cb.OnQuit != nil {
					cb.OnQuit()
				}
				return
			}
		}
	}()

	return t
}

// Publish adds or replaces one slot in the composed tray icon.
func (t *Tray) Publish(id slots.ID, icon *canvas.Buffer, tooltip string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set.put(id, icon, tooltip)
	t.refresh()
	return nil
}

// Withdraw removes one slot from the composed tray icon.
func (t *Tray) Withdraw(id slots.ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set.remove(id)
	t.refresh()
	return nil
}

// OpenMenu is a no-op; systray opens its menu on click by itself.
func (t *Tray) OpenMenu() {}

// StateChanged mirrors the visibility flags into the menu checkboxes.
func (t *Tray) StateChanged(s app.State) {
	for _, id := range toggleOrder {
		setChecked(t.toggles[id], checked(s.Visibility, id))
	}
}

// refresh redraws the icon from the current set. Failures are logged and
// leave the previous image in place.
func (t *Tray) refresh() {
	for id, item := range t.clicks {
		tip, ok := t.set.tooltipOf(id)
		if !ok {
			item.Hide()
			continue
		}
		item.SetTitle(tip)
		item.Show()
	}

	// Withdrawing the last slot leaves the previous image until the next
	// publish; the machine always publishes at least one slot.
	if t.set.empty() {
		return
	}

	regular, template, err := t.set.encode()
	if err != nil {
		log.Printf("Failed to encode tray icon: %v", err)
		return
	}
	t.setIcon(regular, template)

	tip := t.set.tooltip()
	if tip != t.last {
		t.setTooltip(tip)
		t.last = tip
	}
}

// setSystrayIcon uses the template image in the macOS menu bar so the
// system tints it for the current appearance.
func setSystrayIcon(regular, template []byte) {
	if runtime.GOOS == "darwin" {
		systray.SetTemplateIcon(template, regular)
		return
	}
	systray.SetIcon(regular)
}

func setChecked(item *systray.MenuItem, on bool) {
	if item == nil {
		return
	}
	if on {
		item.Check()
	} else {
		item.Uncheck()
	}
}
